package router

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/config"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/handlers"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/voice"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
}

func Setup(log *zap.Logger, catalog *models.Catalog) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("smisession", store))

	// --- Now that sessions are initialized, other middleware can use them ---
	router.Use(CSRFProtection())
	router.Use(UserLoaderMiddleware(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	authHandler := handlers.NewAuthHandler(log)
	userHandler := handlers.NewUserHandler(log)
	sessionHandler := handlers.NewSessionHandler(log, catalog)
	analyticsHandler := handlers.NewAnalyticsHandler(log)
	voiceHandler := handlers.NewVoiceHandler(log, voice.NewAnalyzer())
	gamificationHandler := handlers.NewGamificationHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitErrorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")
	{
		api.GET("/catalog", sessionHandler.GetCatalog)

		auth := api.Group("/auth")
		{
			auth.GET("/csrf", authHandler.CSRFToken)
			auth.POST("/register", limiter, authHandler.Register)
			auth.POST("/login", limiter, authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		authorized := api.Group("/")
		authorized.Use(AuthRequired())
		{
			profile := authorized.Group("/profile")
			{
				profile.GET("", userHandler.GetProfile)
				profile.PUT("", userHandler.UpdateInfo)
				profile.PUT("/password", userHandler.UpdatePassword)
				profile.DELETE("", userHandler.DeleteAccount)
			}

			authorized.POST("/sessions", sessionHandler.Complete)

			analyticsRoutes := authorized.Group("/analytics")
			{
				analyticsRoutes.GET("", analyticsHandler.GetAnalytics)
				analyticsRoutes.GET("/trends", analyticsHandler.GetTrends)
				analyticsRoutes.GET("/benchmark", analyticsHandler.GetBenchmark)
				analyticsRoutes.GET("/charts/score", analyticsHandler.GetScoreChart)
				analyticsRoutes.GET("/charts/radar", analyticsHandler.GetRadarChart)
			}

			voiceRoutes := authorized.Group("/voice")
			{
				voiceRoutes.POST("/analyze", voiceHandler.Analyze)
				voiceRoutes.GET("/history", voiceHandler.History)
			}

			gamificationRoutes := authorized.Group("/gamification")
			{
				gamificationRoutes.GET("", gamificationHandler.GetState)
				gamificationRoutes.GET("/daily-challenge", gamificationHandler.GetDailyChallenge)
				gamificationRoutes.GET("/leaderboard", gamificationHandler.GetLeaderboard)
			}
		}
	}

	return router
}
