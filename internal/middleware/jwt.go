package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"kongenga_back_end/internal/database"
	"kongenga_back_end/internal/models"
	"kongenga_back_end/internal/utils"
)

// Clés posées dans le contexte Gin par AuthRequired.
const (
	CtxUser   = "user"
	CtxUserID = "user_id"
)

// AuthRequired valide le bearer token et résout son sujet vers un
// utilisateur existant, injecté dans le contexte. 401 sur tout échec.
func AuthRequired(db *database.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token manquant"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Format Authorization invalide"})
			c.Abort()
			return
		}

		userID, err := utils.ParseJWT(secret, parts[1])
		if err != nil {
			log.Printf("❌ Erreur parsing JWT: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		if err := db.Users().FindOne(ctx, bson.M{"id": userID}).Decode(&user); err != nil {
			log.Printf("❌ Sujet du token introuvable: %s", userID)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur introuvable"})
			c.Abort()
			return
		}

		c.Set(CtxUser, user)
		c.Set(CtxUserID, user.ID)
		c.Next()
	}
}

// CurrentUser récupère l'utilisateur posé par AuthRequired.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
