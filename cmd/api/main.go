package main

import (
	"log"
	"os"
	"time"

	"github.com/arnikanord/gsc-for-seo-new/internal/analysis"
	"github.com/arnikanord/gsc-for-seo-new/internal/auth"
	"github.com/arnikanord/gsc-for-seo-new/internal/db"
	"github.com/arnikanord/gsc-for-seo-new/internal/insights"
	"github.com/arnikanord/gsc-for-seo-new/internal/middleware"
	"github.com/arnikanord/gsc-for-seo-new/internal/searchconsole"
	"github.com/arnikanord/gsc-for-seo-new/internal/searchdata"
	"github.com/arnikanord/gsc-for-seo-new/internal/website"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"ANTHROPIC_API_KEY",
		"GOOGLE_CLIENT_ID",
		"GOOGLE_CLIENT_SECRET",
		"GOOGLE_REDIRECT_URI",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService, auth.NewGoogleConnector())

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/user", authHandler.Me)
		}
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	websiteRepo := website.NewPostgresRepository(pgDB)
	snapshotRepo := searchdata.NewPostgresRepository(pgDB)
	insightRepo := insights.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	websiteService := website.NewService(websiteRepo)
	snapshotService := searchdata.NewService(snapshotRepo)
	insightService := insights.NewService(insightRepo)
	analysisService := analysis.NewService(analysis.NewAnthropicClient())

	// ───────────────────────── HANDLERS ─────────────────────────
	searchConsoleHandler := searchconsole.NewHandler(
		searchconsole.NewClient(),
		authService,
		snapshotService,
	)
	analysisHandler := analysis.NewHandler(analysisService)
	websiteHandler := website.NewHandler(websiteService)
	insightHandler := insights.NewHandler(insightService)

	// ───────────────────────── SEARCH CONSOLE ROUTES ─────────────────────────
	searchConsole := r.Group("/api/search-console")

	// OAuth callback arrives without a session token
	searchConsole.GET("/callback", authHandler.GoogleCallback)

	protected := searchConsole.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth-url", authHandler.GoogleAuthURL)
		protected.GET("/sites", searchConsoleHandler.Sites)
		protected.GET("/analytics", searchConsoleHandler.Analytics)
		protected.GET("/summary", searchConsoleHandler.Summary)
		protected.GET("/performance-by-date", searchConsoleHandler.PerformanceByDate)
		protected.GET("/performance-by-device", searchConsoleHandler.PerformanceByDevice)
		protected.GET("/performance-by-page", searchConsoleHandler.PerformanceByPage)
		protected.GET("/performance-by-country", searchConsoleHandler.PerformanceByCountry)
	}

	// ───────────────────────── ANALYSIS ROUTES ─────────────────────────
	analyze := r.Group("/api/analyze")
	analyze.Use(middleware.AuthMiddleware())
	{
		analyze.POST("/search-data", analysisHandler.AnalyzeSearchData)
		analyze.POST("/query-recommendations", analysisHandler.QueryRecommendations)
		analyze.POST("/performance-trends", analysisHandler.PerformanceTrends)
	}

	// ───────────────────────── WEBSITE ROUTES ─────────────────────────
	websites := r.Group("/api/websites")
	websites.Use(middleware.AuthMiddleware())
	{
		websites.POST("", websiteHandler.Connect)
		websites.GET("", websiteHandler.ListMine)
	}

	// ───────────────────────── INSIGHT ROUTES ─────────────────────────
	insightGroup := r.Group("/api/insights")
	insightGroup.Use(middleware.AuthMiddleware())
	{
		insightGroup.POST("", insightHandler.Replace)
		insightGroup.GET("/:websiteId", insightHandler.List)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("API running at http://localhost:" + port)
	r.Run(":" + port)
}
