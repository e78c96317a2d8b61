package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/zenithwellness/zenith/internal/ai"
	"github.com/zenithwellness/zenith/internal/ai/gemini"
	"github.com/zenithwellness/zenith/internal/ai/ollama"
	"github.com/zenithwellness/zenith/internal/api/handler"
	customMiddleware "github.com/zenithwellness/zenith/internal/api/middleware"
	"github.com/zenithwellness/zenith/internal/config"
	"github.com/zenithwellness/zenith/internal/crisis"
	"github.com/zenithwellness/zenith/internal/repository/postgres"
	"github.com/zenithwellness/zenith/internal/repository/redis"
	"github.com/zenithwellness/zenith/internal/security"
	"github.com/zenithwellness/zenith/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize security components
	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	encryptionKey := []byte(cfg.Security.EncryptionKey)
	if len(encryptionKey) != 32 {
		encryptionKey = security.DeriveKey(cfg.Auth.JWTSecret)
	}
	encryptor, err := security.NewEncryptor(encryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryptor")
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db.Pool)
	messageRepo := postgres.NewMessageRepository(db.Pool)
	meditationRepo := postgres.NewMeditationRepository(db.Pool)
	communityRepo := postgres.NewCommunityRepository(db.Pool)
	crisisRepo := postgres.NewCrisisRepository(db.Pool)
	spiritualRepo := postgres.NewSpiritualRepository(db.Pool)

	// Initialize rate limiter and quote cache
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)
	quoteCache := redis.NewQuoteCache(redisClient)

	// Initialize AI router with providers
	aiRouter := ai.NewRouter(cfg.AI.DefaultProvider)

	log.Info().Msgf("Initializing AI providers. Default: %s", cfg.AI.DefaultProvider)

	if cfg.AI.Ollama.Host != "" {
		log.Info().Str("host", cfg.AI.Ollama.Host).Msg("Registering Ollama provider")
		aiRouter.RegisterProvider(ollama.NewProvider(cfg.AI.Ollama.Host, cfg.AI.Ollama.DefaultModel))
	}
	if cfg.AI.Gemini.APIKey != "" {
		log.Info().Msg("Registering Gemini provider")
		aiRouter.RegisterProvider(gemini.NewProvider(cfg.AI.Gemini))
	} else {
		log.Warn().Msg("Gemini API key is empty, skipping registration")
	}

	// The crisis classifier uses the default provider; with no providers
	// configured detection falls back to keyword matching alone.
	var classifier crisis.Classifier
	if provider, err := aiRouter.GetProvider(""); err == nil {
		classifier = provider
	}
	detector := crisis.NewDetector(cfg.Crisis.Keywords, classifier)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	crisisService := service.NewCrisisService(detector, crisisRepo, encryptor, cfg.Crisis.EscalationThreshold)
	chatService := service.NewChatService(
		messageRepo,
		aiRouter,
		crisisService,
		cfg.Chat.HistoryContext,
		cfg.Chat.SupportedLanguages,
	)
	meditationService := service.NewMeditationService(meditationRepo, aiRouter)
	communityService := service.NewCommunityService(communityRepo)
	spiritualService := service.NewSpiritualService(aiRouter, quoteCache, spiritualRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)
	crisisHandler := handler.NewCrisisHandler(crisisService)
	meditationHandler := handler.NewMeditationHandler(meditationService)
	communityHandler := handler.NewCommunityHandler(communityService, authService)
	spiritualHandler := handler.NewSpiritualHandler(spiritualService)

	// Auth middleware
	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager)
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(rateLimiter)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Crisis routes reachable without an account
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Optional)

			r.Route("/crisis", func(r chi.Router) {
				r.Post("/check", crisisHandler.Check)
				r.Post("/report", crisisHandler.Report)
				r.Get("/resources", crisisHandler.Resources)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			// AI providers
			r.Get("/ai-providers", handler.ListAIProviders(aiRouter))

			// Profile
			r.Route("/me", func(r chi.Router) {
				r.Get("/", authHandler.Me)
				r.Patch("/", authHandler.UpdateProfile)
				r.Delete("/", authHandler.DeleteAccount)
			})

			// Chat
			r.Route("/chat", func(r chi.Router) {
				r.Post("/message", chatHandler.Send)
				r.Get("/history", chatHandler.History)
				r.Delete("/history", chatHandler.ClearHistory)
				r.Delete("/history/{messageID}", chatHandler.DeleteMessage)
				r.Get("/suggestions", chatHandler.Suggestions)
			})

			// Meditation
			r.Route("/meditation", func(r chi.Router) {
				r.Post("/script", meditationHandler.Script)
				r.Get("/breathing", meditationHandler.Breathing)
				r.Get("/guided", meditationHandler.Guided)
				r.Post("/log", meditationHandler.LogSession)
				r.Get("/sessions", meditationHandler.Sessions)
				r.Get("/stats", meditationHandler.Stats)
			})

			// Community
			r.Route("/community/posts", func(r chi.Router) {
				r.Get("/", communityHandler.ListPosts)
				r.Post("/", communityHandler.CreatePost)

				r.Route("/{postID}", func(r chi.Router) {
					r.Get("/", communityHandler.GetPost)
					r.Delete("/", communityHandler.DeletePost)
					r.Get("/comments", communityHandler.ListComments)
					r.Post("/comments", communityHandler.CreateComment)
					r.Post("/like", communityHandler.Like)
					r.Delete("/like", communityHandler.Unlike)
				})
			})

			// Spiritual content
			r.Route("/spiritual", func(r chi.Router) {
				r.Get("/quote", spiritualHandler.DailyQuote)
				r.Post("/guidance", spiritualHandler.Guidance)
				r.Get("/affirmations", spiritualHandler.Affirmations)
				r.Get("/practices", spiritualHandler.Practices)
				r.Get("/history", spiritualHandler.History)
			})
		})
	})

	return r
}
