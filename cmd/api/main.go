package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httphandlers "github.com/brunopaz/autofipe-backend/internal/handlers/http"
	"github.com/brunopaz/autofipe-backend/internal/handlers/middleware"
	infraauth "github.com/brunopaz/autofipe-backend/internal/infrastructure/auth"
	"github.com/brunopaz/autofipe-backend/internal/infrastructure/config"
	"github.com/brunopaz/autofipe-backend/internal/infrastructure/i18n"
	"github.com/brunopaz/autofipe-backend/internal/infrastructure/logging"
	"github.com/brunopaz/autofipe-backend/internal/infrastructure/persistence/postgres"
	"github.com/brunopaz/autofipe-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting autofipe backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	brandRepo := postgres.NewBrandRepository(db)
	modelRepo := postgres.NewModelRepository(db)
	fuelTypeRepo := postgres.NewFuelTypeRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Inicializar infraestrutura de autenticação
	tokenService := infraauth.NewJWTService(cfg.Auth)
	passwordHasher := infraauth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Inicializar services
	vehicleService := services.NewVehicleService(vehicleRepo, modelRepo, fuelTypeRepo, logger)
	modelService := services.NewModelService(modelRepo, brandRepo, vehicleRepo, logger)
	brandService := services.NewBrandService(brandRepo, modelRepo, modelService, logger)
	fuelTypeService := services.NewFuelTypeService(fuelTypeRepo, vehicleRepo, logger)
	userService := services.NewUserService(userRepo, passwordHasher, logger)
	authService := services.NewAuthService(userRepo, tokenService, passwordHasher, logger)

	// Inicializar handlers
	brandHandler := httphandlers.NewBrandHandler(brandService)
	modelHandler := httphandlers.NewModelHandler(modelService)
	fuelTypeHandler := httphandlers.NewFuelTypeHandler(fuelTypeService)
	vehicleHandler := httphandlers.NewVehicleHandler(vehicleService)
	userHandler := httphandlers.NewUserHandler(userService)
	authHandler := httphandlers.NewAuthHandler(authService, userService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)

	// Health check
	router.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		brands := v1.Group("/brands", authMiddleware.RequireAuth())
		{
			brands.POST("", brandHandler.CreateBrand)
			brands.PATCH("/:id", brandHandler.UpdateBrand)
			brands.DELETE("/:id", brandHandler.DeleteBrand)
			brands.GET("", brandHandler.ListBrands)
		}

		models := v1.Group("/models", authMiddleware.RequireAuth())
		{
			models.POST("", modelHandler.CreateModel)
			models.PATCH("/:id", modelHandler.UpdateModel)
			models.DELETE("/:id", modelHandler.DeleteModel)
			models.GET("/brand/:brandId", modelHandler.GetModelsByBrand)
			models.GET("", modelHandler.ListModels)
		}

		fuelTypes := v1.Group("/fuel-types", authMiddleware.RequireAuth())
		{
			fuelTypes.POST("", fuelTypeHandler.CreateFuelType)
			fuelTypes.PATCH("/:id", fuelTypeHandler.UpdateFuelType)
			fuelTypes.DELETE("/:id", fuelTypeHandler.DeleteFuelType)
			fuelTypes.GET("", fuelTypeHandler.ListFuelTypes)
		}

		vehicles := v1.Group("/vehicles", authMiddleware.RequireAuth())
		{
			vehicles.POST("", vehicleHandler.CreateVehicle)
			vehicles.PATCH("/:id", vehicleHandler.UpdateVehicle)
			vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
			vehicles.GET("/model/:modelId", vehicleHandler.GetVehiclesByModel)
			vehicles.GET("", vehicleHandler.ListVehicles)
		}

		users := v1.Group("/users")
		{
			// auto-cadastro: aceita anônimo e autenticado
			users.POST("", authMiddleware.OptionalAuth(), userHandler.CreateUser)
			users.PATCH("/:id", authMiddleware.RequireAuth(), userHandler.UpdateUser)
			users.DELETE("/:id", authMiddleware.RequireAuth(), userHandler.DeleteUser)
			users.GET("", authMiddleware.RequireAuth(), userHandler.ListUsers)

			auth := users.Group("/auth")
			{
				auth.POST("", authHandler.Login)
				auth.POST("/refresh-token", authHandler.RefreshToken)
				auth.POST("/reset-password", authHandler.ResetPassword)
			}
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
		log.Fatal(err)
	}

	logger.Info("server stopped")
}
