package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kongenga_back_end/internal/database"
	"kongenga_back_end/internal/models"
)

// ================== FORMATIONS ==================

// TrainingListFilter construit le filtre Mongo des formations actives,
// avec filtres optionnels sur le niveau et le prestataire (insensible
// à la casse).
func TrainingListFilter(level, provider string) bson.M {
	filter := bson.M{"isActive": true}
	if level != "" {
		filter["level"] = level
	}
	if provider != "" {
		filter["provider"] = primitive.Regex{Pattern: provider, Options: "i"}
	}
	return filter
}

func GetTraining(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip := parseIntQuery(c, "skip", 0)
		limit := parseIntQuery(c, "limit", 100)
		filter := TrainingListFilter(c.Query("level"), c.Query("provider"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := db.Training().Find(ctx, filter,
			options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les formations"})
			return
		}
		training := []models.Training{}
		if err := cursor.All(ctx, &training); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les formations"})
			return
		}
		c.JSON(http.StatusOK, training)
	}
}

func GetTrainingByID(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var training models.Training
		err := db.Training().FindOne(ctx, bson.M{"id": c.Param("id"), "isActive": true}).Decode(&training)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Formation introuvable"})
			return
		}
		c.JSON(http.StatusOK, training)
	}
}

// GetTrainingBySkill liste les formations actives dont la liste de
// compétences contient la compétence demandée (insensible à la casse).
func GetTrainingBySkill(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		filter := bson.M{
			"isActive": true,
			"skills":   primitive.Regex{Pattern: c.Param("skill"), Options: "i"},
		}
		cursor, err := db.Training().Find(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les formations"})
			return
		}
		training := []models.Training{}
		if err := cursor.All(ctx, &training); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les formations"})
			return
		}
		c.JSON(http.StatusOK, training)
	}
}

func CreateTraining(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.TrainingCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		training := models.Training{
			ID:            uuid.NewString(),
			Name:          input.Name,
			Provider:      input.Provider,
			Description:   input.Description,
			Duration:      input.Duration,
			Cost:          input.Cost,
			Level:         input.Level,
			Language:      input.Language,
			Format:        input.Format,
			ExternalLink:  input.ExternalLink,
			Skills:        input.Skills,
			Prerequisites: input.Prerequisites,
			Certificate:   input.Certificate,
			IsActive:      true,
			CreatedAt:     time.Now().UTC(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		if _, err := db.Training().InsertOne(ctx, training); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de créer la formation"})
			return
		}

		log.Printf("✅ Formation créée: %s", training.ID)
		c.JSON(http.StatusOK, training)
	}
}

func UpdateTraining(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.TrainingCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		trainingID := c.Param("id")
		result, err := db.Training().UpdateOne(ctx,
			bson.M{"id": trainingID},
			bson.M{"$set": bson.M{
				"name":          input.Name,
				"provider":      input.Provider,
				"description":   input.Description,
				"duration":      input.Duration,
				"cost":          input.Cost,
				"level":         input.Level,
				"language":      input.Language,
				"format":        input.Format,
				"externalLink":  input.ExternalLink,
				"skills":        input.Skills,
				"prerequisites": input.Prerequisites,
				"certificate":   input.Certificate,
			}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour la formation"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Formation introuvable"})
			return
		}

		var training models.Training
		if err := db.Training().FindOne(ctx, bson.M{"id": trainingID}).Decode(&training); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour la formation"})
			return
		}
		log.Printf("✅ Formation mise à jour: %s", trainingID)
		c.JSON(http.StatusOK, training)
	}
}

func DeleteTraining(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		result, err := db.Training().UpdateOne(ctx,
			bson.M{"id": c.Param("id")},
			bson.M{"$set": bson.M{"isActive": false}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de supprimer la formation"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Formation introuvable"})
			return
		}

		log.Printf("🗑️  Formation désactivée: %s", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Formation supprimée"})
	}
}
