package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kongenga_back_end/internal/config"
	"kongenga_back_end/internal/database"
	"kongenga_back_end/internal/routes"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := database.Connect(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("❌ Connexion aux bases de données impossible: %v", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatalf("❌ Création des index impossible: %v", err)
	}
	if cfg.SeedData {
		if err := db.SeedSampleData(ctx); err != nil {
			log.Printf("⚠️  Import des données d'exemple: %v", err)
		}
	}
	if err := db.UpdatePlatformStatistics(ctx); err != nil {
		log.Printf("⚠️  Recalcul initial des statistiques: %v", err)
	}
	cancel()

	r := gin.Default()
	r.Use(cors.New(corsConfig()))
	routes.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("🚀 Serveur KONGENGA lancé sur le port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Serveur HTTP: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("ℹ️  Arrêt du serveur en cours...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Arrêt forcé du serveur: %v", err)
	}
	db.Close(ctx)
	log.Println("✅ Serveur arrêté proprement")
}

func corsConfig() cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = strings.Split(origins, ",")
	c.AllowCredentials = true
	return c
}
