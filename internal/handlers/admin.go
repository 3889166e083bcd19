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
	"kongenga_back_end/internal/models"
)

// ================== ADMINISTRATION ==================

// GetPlatformStatistics recalcule puis renvoie le document singleton.
func GetPlatformStatistics(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		if err := db.UpdatePlatformStatistics(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de calculer les statistiques"})
			return
		}

		var stats models.PlatformStatistics
		if err := db.Statistics().FindOne(ctx, bson.M{"_id": database.StatsDocID}).Decode(&stats); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de calculer les statistiques"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// GetDashboard agrège les totaux, les 5 derniers inscrits et emplois,
// et la répartition par secteur.
func GetDashboard(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		totalUsers, err := db.Users().CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
			return
		}
		totalJobs, err := db.Jobs().CountDocuments(ctx, bson.M{"isActive": true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
			return
		}
		totalCompanies, err := db.Companies().CountDocuments(ctx, bson.M{"isActive": true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
			return
		}
		totalTraining, err := db.Training().CountDocuments(ctx, bson.M{"isActive": true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
			return
		}
		pendingTestimonials, err := db.Testimonials().CountDocuments(ctx, bson.M{"isApproved": false})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
			return
		}

		recentOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5)

		cursor, err := db.Users().Find(ctx, bson.M{}, recentOpts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
			return
		}
		recentUsers := []models.User{}
		if err := cursor.All(ctx, &recentUsers); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
			return
		}
		recentUserResponses := make([]models.UserResponse, 0, len(recentUsers))
		for _, u := range recentUsers {
			recentUserResponses = append(recentUserResponses, u.Response())
		}

		cursor, err = db.Jobs().Find(ctx, bson.M{"isActive": true}, recentOpts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
			return
		}
		recentJobs := []models.Job{}
		if err := cursor.All(ctx, &recentJobs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
			return
		}

		cursor, err = db.Sectors().Find(ctx, bson.M{"isActive": true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
			return
		}
		sectors := []models.Sector{}
		if err := cursor.All(ctx, &sectors); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
			return
		}
		sectorStats := make([]gin.H, 0, len(sectors))
		for _, s := range sectors {
			count, err := db.Jobs().CountDocuments(ctx, bson.M{"sectorId": s.ID, "isActive": true})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de charger le tableau de bord"})
				return
			}
			sectorStats = append(sectorStats, gin.H{
				"id":       s.ID,
				"name":     s.Name,
				"jobCount": count,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"totals": gin.H{
				"users":               totalUsers,
				"jobs":                totalJobs,
				"companies":           totalCompanies,
				"training":            totalTraining,
				"pendingTestimonials": pendingTestimonials,
			},
			"recentUsers": recentUserResponses,
			"recentJobs":  recentJobs,
			"sectorStats": sectorStats,
			"lastUpdated": time.Now().UTC(),
		})
	}
}

// ImportSampleData charge le jeu de données de démonstration. Sans
// effet si des secteurs existent déjà.
func ImportSampleData(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		if err := db.SeedSampleData(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible d'importer les données d'exemple"})
			return
		}

		if err := db.UpdatePlatformStatistics(ctx); err != nil {
			log.Printf("⚠️  Recalcul des statistiques: %v", err)
		}

		log.Println("📦 Données d'exemple importées")
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Données d'exemple importées"})
	}
}

func UpdateStatistics(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		if err := db.UpdatePlatformStatistics(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour les statistiques"})
			return
		}

		log.Println("📊 Statistiques recalculées")
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Statistiques mises à jour"})
	}
}

// ================== EXPORTS ==================

func ExportUsers(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		cursor, err := db.Users().Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible d'exporter les utilisateurs"})
			return
		}
		users := []models.User{}
		if err := cursor.All(ctx, &users); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible d'exporter les utilisateurs"})
			return
		}

		responses := make([]models.UserResponse, 0, len(users))
		for _, u := range users {
			responses = append(responses, u.Response())
		}
		c.JSON(http.StatusOK, gin.H{"count": len(responses), "users": responses})
	}
}

func ExportJobs(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		cursor, err := db.Jobs().Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible d'exporter les emplois"})
			return
		}
		jobs := []models.Job{}
		if err := cursor.All(ctx, &jobs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible d'exporter les emplois"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(jobs), "jobs": jobs})
	}
}
