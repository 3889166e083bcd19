package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kongenga_back_end/internal/config"
	"kongenga_back_end/internal/database"
	"kongenga_back_end/internal/handlers"
	"kongenga_back_end/internal/middleware"
)

// RegisterRoutes câble l'ensemble des routes de l'API sous /api.
// Les mutations de catalogue vivent sur les chemins de ressources,
// protégées par auth + RequireAdmin.
func RegisterRoutes(r *gin.Engine, db *database.DB, cfg config.Config) {
	auth := middleware.AuthRequired(db, cfg.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "Bienvenue sur l'API KONGENGA",
				"version": "1.0.0",
			})
		})
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		// ================== AUTHENTIFICATION ==================
		api.POST("/auth/register", middleware.RegisterRateLimit(db.Redis), handlers.Register(db, cfg))
		api.POST("/auth/login", middleware.LoginRateLimit(db.Redis), handlers.Login(db, cfg))
		api.POST("/auth/token", handlers.Token(db, cfg))

		// ================== UTILISATEURS ==================
		users := api.Group("/users")
		{
			users.GET("/me", auth, handlers.GetMe())
			users.PUT("/me", auth, handlers.UpdateMe(db))
			users.POST("/favorites/:jobId", auth, handlers.ToggleFavoriteJob(db))
			users.GET("/favorites", auth, handlers.GetFavoriteJobs(db))
			users.PUT("/progress", auth, handlers.UpdateProgress(db))

			users.GET("/", auth, middleware.RequireAdmin, handlers.GetUsers(db))
			users.GET("/stats", auth, middleware.RequireAdmin, handlers.GetUserStats(db))
		}

		// ================== MÉTIERS ==================
		jobs := api.Group("/jobs")
		{
			jobs.GET("/", handlers.GetJobs(db))
			jobs.GET("/:id", handlers.GetJobByID(db))
			jobs.GET("/sector/:sectorId", handlers.GetJobsBySector(db))

			jobs.POST("/", auth, middleware.RequireAdmin, handlers.CreateJob(db))
			jobs.PUT("/:id", auth, middleware.RequireAdmin, handlers.UpdateJob(db))
			jobs.DELETE("/:id", auth, middleware.RequireAdmin, handlers.DeleteJob(db))
		}

		// ================== ENTREPRISES ==================
		companies := api.Group("/companies")
		{
			companies.GET("/", handlers.GetCompanies(db))
			companies.GET("/:id", handlers.GetCompanyByID(db))

			companies.POST("/", auth, middleware.RequireAdmin, handlers.CreateCompany(db))
			companies.PUT("/:id", auth, middleware.RequireAdmin, handlers.UpdateCompany(db))
			companies.DELETE("/:id", auth, middleware.RequireAdmin, handlers.DeleteCompany(db))
		}

		// ================== FORMATIONS ==================
		training := api.Group("/training")
		{
			training.GET("/", handlers.GetTraining(db))
			training.GET("/:id", handlers.GetTrainingByID(db))
			training.GET("/skills/:skill", handlers.GetTrainingBySkill(db))

			training.POST("/", auth, middleware.RequireAdmin, handlers.CreateTraining(db))
			training.PUT("/:id", auth, middleware.RequireAdmin, handlers.UpdateTraining(db))
			training.DELETE("/:id", auth, middleware.RequireAdmin, handlers.DeleteTraining(db))
		}

		// ================== SECTEURS ==================
		sectors := api.Group("/sectors")
		{
			sectors.GET("/", handlers.GetSectors(db))
			sectors.GET("/:id", handlers.GetSectorByID(db))

			sectors.POST("/", auth, middleware.RequireAdmin, handlers.CreateSector(db))
			sectors.PUT("/:id", auth, middleware.RequireAdmin, handlers.UpdateSector(db))
			sectors.DELETE("/:id", auth, middleware.RequireAdmin, handlers.DeleteSector(db))
		}

		// ================== TÉMOIGNAGES ==================
		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("/", handlers.GetTestimonials(db))
			testimonials.GET("/job/:jobId", handlers.GetTestimonialsByJob(db))
			testimonials.POST("/", auth, handlers.CreateTestimonial(db))

			testimonials.GET("/pending", auth, middleware.RequireAdmin, handlers.GetPendingTestimonials(db))
			testimonials.PUT("/:id/approve", auth, middleware.RequireAdmin, handlers.ApproveTestimonial(db))
			testimonials.PUT("/:id/verify", auth, middleware.RequireAdmin, handlers.VerifyTestimonial(db))
			testimonials.DELETE("/:id", auth, middleware.RequireAdmin, handlers.DeleteTestimonial(db))
		}

		// ================== ADMINISTRATION ==================
		admin := api.Group("/admin", auth, middleware.RequireAdmin)
		{
			admin.GET("/statistics", handlers.GetPlatformStatistics(db))
			admin.GET("/dashboard", handlers.GetDashboard(db))
			admin.POST("/import-sample-data", handlers.ImportSampleData(db))
			admin.POST("/update-statistics", handlers.UpdateStatistics(db))
			admin.GET("/export/users", handlers.ExportUsers(db))
			admin.GET("/export/jobs", handlers.ExportJobs(db))
		}
	}
}
