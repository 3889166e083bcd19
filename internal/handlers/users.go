package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kongenga_back_end/internal/database"
	"kongenga_back_end/internal/middleware"
	"kongenga_back_end/internal/models"
)

// ================== PROFIL UTILISATEUR ==================

func GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
			return
		}
		c.JSON(http.StatusOK, user.Response())
	}
}

// UserUpdateSet traduit une mise à jour partielle de profil en document
// $set, en ignorant les champs absents.
func UserUpdateSet(update models.UserUpdate) bson.M {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.University != nil {
		set["university"] = *update.University
	}
	if update.Year != nil {
		set["year"] = *update.Year
	}
	if update.Field != nil {
		set["field"] = *update.Field
	}
	if update.PreferredLanguage != nil {
		set["preferredLanguage"] = *update.PreferredLanguage
	}
	return set
}

func UpdateMe(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
			return
		}

		var input models.UserUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		set := UserUpdateSet(input)
		if len(set) > 0 {
			if _, err := db.Users().UpdateOne(ctx, bson.M{"id": user.ID}, bson.M{"$set": set}); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour le profil"})
				return
			}
		}

		var updated models.User
		if err := db.Users().FindOne(ctx, bson.M{"id": user.ID}).Decode(&updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour le profil"})
			return
		}
		c.JSON(http.StatusOK, updated.Response())
	}
}

// ================== FAVORIS ==================

// ToggleFavorite : bascule d'un favori. Le jobId est retiré s'il est
// déjà présent, ajouté sinon (l'opération est sa propre inverse).
func ToggleFavorite(favorites []string, jobID string) (updated []string, added bool) {
	for i, id := range favorites {
		if id == jobID {
			return append(append([]string{}, favorites[:i]...), favorites[i+1:]...), false
		}
	}
	return append(append([]string{}, favorites...), jobID), true
}

func ToggleFavoriteJob(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		jobID := c.Param("jobId")
		favorites, added := ToggleFavorite(user.FavoriteJobs, jobID)

		// Seul l'ajout exige un métier actif ; le retrait reste
		// possible même si le métier a été désactivé depuis l'ajout.
		if added {
			count, err := db.Jobs().CountDocuments(ctx, bson.M{"id": jobID, "isActive": true})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour les favoris"})
				return
			}
			if count == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "Emploi introuvable"})
				return
			}
		}

		if _, err := db.Users().UpdateOne(ctx,
			bson.M{"id": user.ID},
			bson.M{"$set": bson.M{"favoriteJobs": favorites}}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour les favoris"})
			return
		}

		action := "removed"
		if added {
			action = "added"
		}
		log.Printf("⭐ Favori %s: utilisateur=%s emploi=%s", action, user.ID, jobID)
		c.JSON(http.StatusOK, gin.H{"action": action, "favoriteJobs": favorites})
	}
}

// GetFavoriteJobs renvoie les favoris de l'utilisateur sous forme
// agrégée, en ignorant les emplois désactivés depuis l'ajout.
func GetFavoriteJobs(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		jobs := []models.Job{}
		if len(user.FavoriteJobs) > 0 {
			cursor, err := db.Jobs().Find(ctx, bson.M{
				"id":       bson.M{"$in": user.FavoriteJobs},
				"isActive": true,
			})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les favoris"})
				return
			}
			if err := cursor.All(ctx, &jobs); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les favoris"})
				return
			}
		}

		responses, err := resolveJobs(ctx, db, jobs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les favoris"})
			return
		}
		c.JSON(http.StatusOK, responses)
	}
}

// ================== PROGRESSION ==================

func UpdateProgress(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
			return
		}

		var progress models.UserProgress
		if err := c.ShouldBindJSON(&progress); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		if _, err := db.Users().UpdateOne(ctx,
			bson.M{"id": user.ID},
			bson.M{"$set": bson.M{"progress": progress}}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour la progression"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "progress": progress})
	}
}

// ================== ADMINISTRATION DES UTILISATEURS ==================

func GetUsers(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip := parseIntQuery(c, "skip", 0)
		limit := parseIntQuery(c, "limit", 100)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := db.Users().Find(ctx, bson.M{},
			options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les utilisateurs"})
			return
		}
		users := []models.User{}
		if err := cursor.All(ctx, &users); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les utilisateurs"})
			return
		}

		responses := make([]models.UserResponse, 0, len(users))
		for _, u := range users {
			responses = append(responses, u.Response())
		}
		c.JSON(http.StatusOK, responses)
	}
}

func GetUserStats(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		totalUsers, err := db.Users().CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de calculer les statistiques"})
			return
		}
		totalStudents, err := db.Users().CountDocuments(ctx, bson.M{"role": models.RoleStudent})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de calculer les statistiques"})
			return
		}
		totalAdmins, err := db.Users().CountDocuments(ctx, bson.M{"role": models.RoleSiteManager})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de calculer les statistiques"})
			return
		}

		monthStart := database.MonthStart(time.Now().UTC())
		newThisMonth, err := db.Users().CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": monthStart}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de calculer les statistiques"})
			return
		}
		activeUsers, err := db.Users().CountDocuments(ctx, bson.M{"lastActive": bson.M{"$gte": monthStart}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de calculer les statistiques"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalUsers":        totalUsers,
			"totalStudents":     totalStudents,
			"totalAdmins":       totalAdmins,
			"newUsersThisMonth": newThisMonth,
			"activeUsers":       activeUsers,
		})
	}
}
