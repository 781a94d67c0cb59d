package handlers

import (
	"github.com/mwalto7/filevault/cmd/docs"
	portssvc "github.com/mwalto7/filevault/internal/core/ports/services"
	"github.com/mwalto7/filevault/internal/dto"
	"github.com/mwalto7/filevault/internal/middleware"
	"github.com/mwalto7/filevault/internal/platform/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	dto.RegisterCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Routes behind the bearer-token gate
	setupProtectedRoutes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerAuthRoutes sets up the public authentication routes. Sign-up and
// sign-in share one per-IP limiter; token rotation is not limited because a
// live refresh token already proves a prior successful sign-in.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	authHandler := NewAuthHandler(authService)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	r.POST("/signup", limitMiddleware, authHandler.SignUp)
	r.POST("/signin", limitMiddleware, authHandler.SignIn)
	r.POST("/signin/new_token", authHandler.RefreshToken)
}

// setupProtectedRoutes configures everything behind AuthMiddleware.
func setupProtectedRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	authed := r.Group("/", middleware.AuthMiddleware(cfg.JWTSecret))

	authHandler := NewAuthHandler(services.Auth)
	authed.GET("/info", authHandler.Info)
	authed.GET("/logout", authHandler.Logout)

	registerFileRoutes(authed, services.File)
}

// registerFileRoutes sets up the per-user file storage routes.
func registerFileRoutes(rg *gin.RouterGroup, fileService portssvc.FileSvcFacade) {
	fileHandler := NewFileHandler(fileService)

	files := rg.Group("/file")
	files.POST("/upload", fileHandler.Upload)
	files.GET("/list", fileHandler.List)
	files.GET("/:id", fileHandler.Show)
	files.GET("/download/:id", fileHandler.Download)
	files.PUT("/update/:id", fileHandler.Update)
	files.DELETE("/delete/:id", fileHandler.Delete)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
