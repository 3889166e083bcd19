package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kongenga_back_end/internal/database"
	"kongenga_back_end/internal/models"
)

// ================== MÉTIERS ==================

// JobListFilter construit le filtre Mongo des listings de métiers.
// La recherche est une sous-chaîne insensible à la casse sur le
// titre et la description dans la langue demandée, plus les
// compétences.
func JobListFilter(sectorID, search string, lang models.Language) bson.M {
	filter := bson.M{"isActive": true}
	if sectorID != "" {
		filter["sectorId"] = sectorID
	}
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{lang.Field("title"): regex},
			bson.M{lang.Field("description"): regex},
			bson.M{"skills": regex},
		}
	}
	return filter
}

// JobUpdateSet traduit un PUT partiel en document $set ; seuls les
// champs renseignés sont poussés, updatedAt toujours.
func JobUpdateSet(update models.JobUpdate, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.SectorID != nil {
		set["sectorId"] = *update.SectorID
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Education != nil {
		set["education"] = *update.Education
	}
	if update.SalaryRange != nil {
		set["salaryRange"] = *update.SalaryRange
	}
	if update.HiringRate != nil {
		set["hiringRate"] = *update.HiringRate
	}
	if update.GrowthProjection != nil {
		set["growthProjection"] = *update.GrowthProjection
	}
	if update.Companies != nil {
		set["companies"] = *update.Companies
	}
	if update.Skills != nil {
		set["skills"] = *update.Skills
	}
	if update.Training != nil {
		set["training"] = *update.Training
	}
	if update.Testimonials != nil {
		set["testimonials"] = *update.Testimonials
	}
	if update.Requirements != nil {
		set["requirements"] = *update.Requirements
	}
	if update.Benefits != nil {
		set["benefits"] = *update.Benefits
	}
	if update.WorkEnvironment != nil {
		set["workEnvironment"] = *update.WorkEnvironment
	}
	if update.CareerPath != nil {
		set["careerPath"] = *update.CareerPath
	}
	if update.IsActive != nil {
		set["isActive"] = *update.IsActive
	}
	return set
}

// GetJobs liste les métiers actifs avec filtres et pagination offset.
func GetJobs(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip := parseIntQuery(c, "skip", 0)
		limit := parseIntQuery(c, "limit", 100)
		lang := models.ParseLanguage(c.Query("language"))
		filter := JobListFilter(c.Query("sector"), c.Query("search"), lang)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := db.Jobs().Find(ctx, filter,
			options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les métiers"})
			return
		}
		var jobs []models.Job
		if err := cursor.All(ctx, &jobs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les métiers"})
			return
		}

		responses, err := resolveJobs(ctx, db, jobs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les métiers"})
			return
		}
		c.JSON(http.StatusOK, responses)
	}
}

// GetJobByID retourne un métier actif entièrement résolu. Les métiers
// désactivés répondent 404.
func GetJobByID(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var job models.Job
		err := db.Jobs().FindOne(ctx, bson.M{"id": c.Param("id"), "isActive": true}).Decode(&job)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Métier introuvable"})
			return
		}

		resp, err := resolveJobRefs(ctx, db, job)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer le métier"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetJobsBySector liste les métiers actifs d'un secteur (par ID de
// secteur, clé étrangère).
func GetJobsBySector(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sectorID := c.Param("sectorId")
		skip := parseIntQuery(c, "skip", 0)
		limit := parseIntQuery(c, "limit", 50)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := db.Jobs().Find(ctx,
			bson.M{"sectorId": sectorID, "isActive": true},
			options.Find().SetSkip(int64(skip)).SetLimit(int64(limit)))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les métiers du secteur"})
			return
		}
		var jobs []models.Job
		if err := cursor.All(ctx, &jobs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les métiers du secteur"})
			return
		}

		responses, err := resolveJobs(ctx, db, jobs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les métiers du secteur"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"jobs": responses, "sector": sectorID, "total": len(responses)})
	}
}

// CreateJob crée un métier (admin). Les références ne sont pas
// vérifiées — un ID d'entreprise inexistant donnera simplement une
// jointure vide à la lecture.
func CreateJob(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.JobCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		now := time.Now().UTC()
		job := models.Job{
			ID:               uuid.NewString(),
			Title:            input.Title,
			SectorID:         input.SectorID,
			Description:      input.Description,
			Education:        orEmpty(input.Education),
			SalaryRange:      input.SalaryRange,
			HiringRate:       input.HiringRate,
			GrowthProjection: input.GrowthProjection,
			Companies:        orEmpty(input.Companies),
			Skills:           orEmpty(input.Skills),
			Training:         orEmpty(input.Training),
			Testimonials:     orEmpty(input.Testimonials),
			Requirements:     input.Requirements,
			Benefits:         input.Benefits,
			WorkEnvironment:  input.WorkEnvironment,
			CareerPath:       input.CareerPath,
			IsActive:         true,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		if _, err := db.Jobs().InsertOne(ctx, job); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de créer le métier"})
			return
		}

		if err := db.UpdatePlatformStatistics(ctx); err != nil {
			log.Printf("⚠️  Recalcul des statistiques: %v", err)
		}

		resp, err := resolveJobRefs(ctx, db, job)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de créer le métier"})
			return
		}
		log.Printf("✅ Métier créé: %s", job.ID)
		c.JSON(http.StatusOK, resp)
	}
}

// UpdateJob applique un PUT partiel (admin).
func UpdateJob(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.JobUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		jobID := c.Param("id")
		result, err := db.Jobs().UpdateOne(ctx,
			bson.M{"id": jobID},
			bson.M{"$set": JobUpdateSet(input, time.Now().UTC())})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour le métier"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Métier introuvable"})
			return
		}

		if err := db.UpdatePlatformStatistics(ctx); err != nil {
			log.Printf("⚠️  Recalcul des statistiques: %v", err)
		}

		var job models.Job
		if err := db.Jobs().FindOne(ctx, bson.M{"id": jobID}).Decode(&job); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour le métier"})
			return
		}
		resp, err := resolveJobRefs(ctx, db, job)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de mettre à jour le métier"})
			return
		}
		log.Printf("✅ Métier mis à jour: %s", jobID)
		c.JSON(http.StatusOK, resp)
	}
}

// DeleteJob désactive un métier (suppression douce, admin).
func DeleteJob(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		result, err := db.Jobs().UpdateOne(ctx,
			bson.M{"id": c.Param("id")},
			bson.M{"$set": bson.M{"isActive": false}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de supprimer le métier"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Métier introuvable"})
			return
		}

		if err := db.UpdatePlatformStatistics(ctx); err != nil {
			log.Printf("⚠️  Recalcul des statistiques: %v", err)
		}

		log.Printf("🗑️  Métier désactivé: %s", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Métier supprimé"})
	}
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
