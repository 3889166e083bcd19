package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kongenga_back_end/internal/database"
	"kongenga_back_end/internal/models"
)

// ================== TÉMOIGNAGES ==================

// TestimonialListFilter : les lectures publiques ne voient que les
// témoignages approuvés, avec filtre optionnel par métier.
func TestimonialListFilter(jobID string) bson.M {
	filter := bson.M{"isApproved": true}
	if jobID != "" {
		filter["jobId"] = jobID
	}
	return filter
}

// GetTestimonials liste uniquement les témoignages approuvés.
func GetTestimonials(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip := parseIntQuery(c, "skip", 0)
		limit := parseIntQuery(c, "limit", 100)
		filter := TestimonialListFilter(c.Query("job_id"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := db.Testimonials().Find(ctx, filter,
			options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les témoignages"})
			return
		}
		testimonials := []models.Testimonial{}
		if err := cursor.All(ctx, &testimonials); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les témoignages"})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

func GetTestimonialsByJob(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := db.Testimonials().Find(ctx, TestimonialListFilter(c.Param("jobId")))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les témoignages"})
			return
		}
		testimonials := []models.Testimonial{}
		if err := cursor.All(ctx, &testimonials); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les témoignages"})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

// CreateTestimonial : tout utilisateur authentifié peut soumettre un
// témoignage, qui reste invisible tant qu'un administrateur ne l'a pas
// approuvé. L'emploi cible doit exister et être actif.
func CreateTestimonial(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.TestimonialCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		count, err := db.Jobs().CountDocuments(ctx, bson.M{"id": input.JobID, "isActive": true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de créer le témoignage"})
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Emploi introuvable"})
			return
		}

		testimonial := models.Testimonial{
			ID:         uuid.NewString(),
			Name:       input.Name,
			Position:   input.Position,
			Company:    input.Company,
			Quote:      input.Quote,
			Image:      input.Image,
			LinkedIn:   input.LinkedIn,
			IsVerified: false,
			IsApproved: false,
			JobID:      input.JobID,
			CreatedAt:  time.Now().UTC(),
		}

		if _, err := db.Testimonials().InsertOne(ctx, testimonial); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de créer le témoignage"})
			return
		}

		log.Printf("✅ Témoignage soumis: %s (emploi %s)", testimonial.ID, testimonial.JobID)
		c.JSON(http.StatusOK, testimonial)
	}
}

func GetPendingTestimonials(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := db.Testimonials().Find(ctx, bson.M{"isApproved": false})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les témoignages"})
			return
		}
		testimonials := []models.Testimonial{}
		if err := cursor.All(ctx, &testimonials); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les témoignages"})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

func ApproveTestimonial(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		result, err := db.Testimonials().UpdateOne(ctx,
			bson.M{"id": c.Param("id")},
			bson.M{"$set": bson.M{"isApproved": true}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible d'approuver le témoignage"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Témoignage introuvable"})
			return
		}

		if err := db.UpdatePlatformStatistics(ctx); err != nil {
			log.Printf("⚠️  Recalcul des statistiques: %v", err)
		}

		log.Printf("✅ Témoignage approuvé: %s", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Témoignage approuvé"})
	}
}

func VerifyTestimonial(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		result, err := db.Testimonials().UpdateOne(ctx,
			bson.M{"id": c.Param("id")},
			bson.M{"$set": bson.M{"isVerified": true}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de vérifier le témoignage"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Témoignage introuvable"})
			return
		}

		log.Printf("✅ Témoignage vérifié: %s", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Témoignage vérifié"})
	}
}

// DeleteTestimonial supprime définitivement (pas de suppression douce,
// un témoignage refusé n'a pas vocation à rester en base).
func DeleteTestimonial(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		result, err := db.Testimonials().DeleteOne(ctx, bson.M{"id": c.Param("id")})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de supprimer le témoignage"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Témoignage introuvable"})
			return
		}

		if err := db.UpdatePlatformStatistics(ctx); err != nil {
			log.Printf("⚠️  Recalcul des statistiques: %v", err)
		}

		log.Printf("🗑️  Témoignage supprimé: %s", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Témoignage supprimé"})
	}
}
