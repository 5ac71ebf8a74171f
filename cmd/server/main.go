package main

import (
	"log"
	"net/http"
	"strconv"

	"natulang/config"
	"natulang/db"
	"natulang/routes"
	"natulang/services"
	"natulang/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env before the config so key fallbacks resolve
	godotenv.Load()

	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := services.InitGeminiService(cfg.Gemini.ApiKey); err != nil {
		log.Printf("Gemini judge unavailable, scoring with heuristics: %v", err)
	}
	services.InitSpeechServices(cfg.Openai.ApiKey)

	fileCatalog, err := services.NewFileCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load course catalog: %v", err)
	}

	var catalog services.Catalog = fileCatalog
	if cfg.Database.URI != "" {
		if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
			log.Printf("MongoDB unavailable, serving catalog from file: %v", err)
		} else {
			log.Println("Connected to MongoDB")
			utils.SeedCourseData(fileCatalog.Data())
			catalog = services.NewMongoCatalog()
		}
	}

	router := setupRouter(catalog)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(catalog services.Catalog) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// CORS wide open so the mobile clients can connect from anywhere.
	// In production: specify exact origins.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	store := services.GetProgressStore()
	sessions := services.GetSessionStore()
	judge := services.NewPronunciationJudge()
	progression := services.NewProgressionEngine(catalog, store)
	orchestrator := services.NewPracticeOrchestrator(judge, progression, store)
	transcriber := services.NewSpeechTranscriber()

	routes.SetupCourseRoutes(router, catalog)
	routes.SetupPracticeRoutes(router, orchestrator, transcriber)
	routes.SetupProgressRoutes(router, store)
	routes.SetupSpeechRoutes(router, transcriber)
	routes.SetupSessionRoutes(router, sessions)

	router.GET("/health", func(c *gin.Context) {
		courses, _ := catalog.GetAllCourses()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "courses": len(courses)})
	})

	return router
}
