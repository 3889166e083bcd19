package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kongenga_back_end/internal/models"
)

// RequireAdmin vérifie que l'utilisateur authentifié a le rôle
// site_manager. À chaîner après AuthRequired.
func RequireAdmin(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok || user.Role != models.RoleSiteManager {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux gestionnaires du site"})
		c.Abort()
		return
	}
	c.Next()
}
