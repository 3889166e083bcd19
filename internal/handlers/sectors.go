package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"kongenga_back_end/internal/database"
	"kongenga_back_end/internal/models"
)

// ================== SECTEURS ==================

// GetSectors renvoie les secteurs actifs avec leur jobCount recalculé
// en direct sur les emplois actifs, le champ stocké pouvant dater.
func GetSectors(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := db.Sectors().Find(ctx, bson.M{"isActive": true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les secteurs"})
			return
		}
		sectors := []models.Sector{}
		if err := cursor.All(ctx, &sectors); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les secteurs"})
			return
		}

		for i := range sectors {
			count, err := db.Jobs().CountDocuments(ctx, bson.M{"sectorId": sectors[i].ID, "isActive": true})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les secteurs"})
				return
			}
			sectors[i].JobCount = int(count)
		}
		c.JSON(http.StatusOK, sectors)
	}
}

func GetSectorByID(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var sector models.Sector
		err := db.Sectors().FindOne(ctx, bson.M{"id": c.Param("id"), "isActive": true}).Decode(&sector)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Secteur introuvable"})
			return
		}

		count, err := db.Jobs().CountDocuments(ctx, bson.M{"sectorId": sector.ID, "isActive": true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer le secteur"})
			return
		}
		sector.JobCount = int(count)
		c.JSON(http.StatusOK, sector)
	}
}

func CreateSector(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.SectorCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		sector := models.Sector{
			ID:              uuid.NewString(),
			Name:            input.Name,
			Description:     input.Description,
			Icon:            input.Icon,
			Color:           input.Color,
			JobCount:        0,
			Growth:          input.Growth,
			BackgroundImage: input.BackgroundImage,
			IsActive:        true,
			CreatedAt:       time.Now().UTC(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		if _, err := db.Sectors().InsertOne(ctx, sector); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de créer le secteur"})
			return
		}

		log.Printf("✅ Secteur créé: %s", sector.ID)
		c.JSON(http.StatusOK, sector)
	}
}

func UpdateSector(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.SectorCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		sectorID := c.Param("id")
		result, err := db.Sectors().UpdateOne(ctx,
			bson.M{"id": sectorID},
			bson.M{"$set": bson.M{
				"name":            input.Name,
				"description":     input.Description,
				"icon":            input.Icon,
				"color":           input.Color,
				"growth":          input.Growth,
				"backgroundImage": input.BackgroundImage,
			}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour le secteur"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Secteur introuvable"})
			return
		}

		var sector models.Sector
		if err := db.Sectors().FindOne(ctx, bson.M{"id": sectorID}).Decode(&sector); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour le secteur"})
			return
		}
		log.Printf("✅ Secteur mis à jour: %s", sectorID)
		c.JSON(http.StatusOK, sector)
	}
}

func DeleteSector(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		result, err := db.Sectors().UpdateOne(ctx,
			bson.M{"id": c.Param("id")},
			bson.M{"$set": bson.M{"isActive": false}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de supprimer le secteur"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Secteur introuvable"})
			return
		}

		log.Printf("🗑️  Secteur désactivé: %s", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Secteur supprimé"})
	}
}
