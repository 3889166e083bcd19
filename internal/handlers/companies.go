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

// ================== ENTREPRISES ==================

func GetCompanies(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip := parseIntQuery(c, "skip", 0)
		limit := parseIntQuery(c, "limit", 100)

		filter := bson.M{"isActive": true}
		if sector := c.Query("sector"); sector != "" {
			filter["sectorId"] = sector
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := db.Companies().Find(ctx, filter,
			options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les entreprises"})
			return
		}
		companies := []models.Company{}
		if err := cursor.All(ctx, &companies); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les entreprises"})
			return
		}
		c.JSON(http.StatusOK, companies)
	}
}

// GetCompanyByID : une entreprise désactivée répond 404, la
// suppression douce est un drapeau de visibilité.
func GetCompanyByID(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var company models.Company
		err := db.Companies().FindOne(ctx, bson.M{"id": c.Param("id"), "isActive": true}).Decode(&company)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entreprise introuvable"})
			return
		}
		c.JSON(http.StatusOK, company)
	}
}

func CreateCompany(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CompanyCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		company := models.Company{
			ID:           uuid.NewString(),
			Name:         input.Name,
			Description:  input.Description,
			Logo:         input.Logo,
			Website:      input.Website,
			Location:     input.Location,
			SectorID:     input.SectorID,
			Size:         input.Size,
			ContactEmail: input.ContactEmail,
			ContactPhone: input.ContactPhone,
			IsActive:     true,
			CreatedAt:    time.Now().UTC(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		if _, err := db.Companies().InsertOne(ctx, company); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de créer l'entreprise"})
			return
		}

		if err := db.UpdatePlatformStatistics(ctx); err != nil {
			log.Printf("⚠️  Recalcul des statistiques: %v", err)
		}

		log.Printf("✅ Entreprise créée: %s", company.ID)
		c.JSON(http.StatusOK, company)
	}
}

// UpdateCompany remplace l'objet entier (PUT).
func UpdateCompany(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CompanyCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		companyID := c.Param("id")
		result, err := db.Companies().UpdateOne(ctx,
			bson.M{"id": companyID},
			bson.M{"$set": bson.M{
				"name":         input.Name,
				"description":  input.Description,
				"logo":         input.Logo,
				"website":      input.Website,
				"location":     input.Location,
				"sectorId":     input.SectorID,
				"size":         input.Size,
				"contactEmail": input.ContactEmail,
				"contactPhone": input.ContactPhone,
			}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour l'entreprise"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entreprise introuvable"})
			return
		}

		var company models.Company
		if err := db.Companies().FindOne(ctx, bson.M{"id": companyID}).Decode(&company); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour l'entreprise"})
			return
		}
		log.Printf("✅ Entreprise mise à jour: %s", companyID)
		c.JSON(http.StatusOK, company)
	}
}

func DeleteCompany(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		result, err := db.Companies().UpdateOne(ctx,
			bson.M{"id": c.Param("id")},
			bson.M{"$set": bson.M{"isActive": false}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de supprimer l'entreprise"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entreprise introuvable"})
			return
		}

		if err := db.UpdatePlatformStatistics(ctx); err != nil {
			log.Printf("⚠️  Recalcul des statistiques: %v", err)
		}

		log.Printf("🗑️  Entreprise désactivée: %s", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Entreprise supprimée"})
	}
}
