package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"kongenga_back_end/internal/config"
	"kongenga_back_end/internal/database"
	"kongenga_back_end/internal/models"
	"kongenga_back_end/internal/utils"
)

// ================== AUTHENTIFICATION ==================

// Register crée un compte étudiant. Email en doublon → 400, le
// premier compte reste intact.
func Register(db *database.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UserCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		count, err := db.Users().CountDocuments(ctx, bson.M{"email": input.Email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "L'inscription a échoué"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cet email est déjà enregistré"})
			return
		}

		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "L'inscription a échoué"})
			return
		}

		user := models.User{
			ID:                uuid.NewString(),
			Name:              input.Name,
			Email:             input.Email,
			PasswordHash:      hash,
			Role:              models.RoleStudent,
			University:        input.University,
			Year:              input.Year,
			Field:             input.Field,
			FavoriteJobs:      []string{},
			Progress:          models.DefaultProgress(),
			PreferredLanguage: models.LangFrench,
			CreatedAt:         time.Now().UTC(),
		}

		if _, err := db.Users().InsertOne(ctx, user); err != nil {
			// L'index unique sur email couvre la course entre le
			// comptage et l'insertion.
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cet email est déjà enregistré"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "L'inscription a échoué"})
			return
		}

		token, err := utils.GenerateJWT(cfg.JWTSecret, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "L'inscription a échoué"})
			return
		}

		log.Printf("✅ Utilisateur inscrit: %s", user.Email)
		c.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"token_type":   "bearer",
			"user":         user.Response(),
		})
	}
}

// Login authentifie email + mot de passe. En mode manager, le compte
// administrateur bootstrap configuré par l'environnement est créé à
// la première connexion s'il n'existe pas encore.
func Login(db *database.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UserLogin
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		if input.UserType == "manager" && bootstrapMatches(cfg, input) {
			user, err := ensureBootstrapAdmin(ctx, db, cfg)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "La connexion a échoué"})
				return
			}
			issueToken(c, db, cfg, user)
			return
		}

		var user models.User
		err := db.Users().FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
		if err != nil || !utils.CheckPassword(input.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
			return
		}

		issueToken(c, db, cfg, user)
	}
}

// Token est l'endpoint compatible OAuth2 (password grant en form).
func Token(db *database.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form struct {
			Username string `form:"username" binding:"required"`
			Password string `form:"password" binding:"required"`
		}
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var user models.User
		err := db.Users().FindOne(ctx, bson.M{"email": form.Username}).Decode(&user)
		if err != nil || !utils.CheckPassword(form.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
			return
		}

		token, err := utils.GenerateJWT(cfg.JWTSecret, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "La connexion a échoué"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
	}
}

func bootstrapMatches(cfg config.Config, input models.UserLogin) bool {
	return cfg.AdminEmail != "" && cfg.AdminPassword != "" &&
		input.Email == cfg.AdminEmail && input.Password == cfg.AdminPassword
}

// ensureBootstrapAdmin crée le compte site_manager au premier appel ;
// les connexions suivantes retrouvent le même enregistrement.
func ensureBootstrapAdmin(ctx context.Context, db *database.DB, cfg config.Config) (models.User, error) {
	var user models.User
	err := db.Users().FindOne(ctx, bson.M{"email": cfg.AdminEmail}).Decode(&user)
	if err == nil {
		return user, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return models.User{}, err
	}
	user = models.User{
		ID:                uuid.NewString(),
		Name:              "Administrateur KONGENGA",
		Email:             cfg.AdminEmail,
		PasswordHash:      hash,
		Role:              models.RoleSiteManager,
		FavoriteJobs:      []string{},
		Progress:          models.DefaultProgress(),
		PreferredLanguage: models.LangFrench,
		CreatedAt:         time.Now().UTC(),
	}
	if _, err := db.Users().InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Deux premières connexions en concurrence : l'index
			// unique garantit un seul enregistrement.
			err = db.Users().FindOne(ctx, bson.M{"email": cfg.AdminEmail}).Decode(&user)
			return user, err
		}
		return models.User{}, err
	}

	log.Printf("✅ Administrateur bootstrap créé: %s", cfg.AdminEmail)
	return user, nil
}

func issueToken(c *gin.Context, db *database.DB, cfg config.Config, user models.User) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	if _, err := db.Users().UpdateOne(ctx,
		bson.M{"id": user.ID},
		bson.M{"$set": bson.M{"lastActive": now}},
	); err != nil {
		log.Printf("⚠️  Mise à jour lastActive: %v", err)
	}
	user.LastActive = &now

	token, err := utils.GenerateJWT(cfg.JWTSecret, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "La connexion a échoué"})
		return
	}

	log.Printf("✅ Connexion: %s", user.Email)
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user.Response(),
	})
}
