package handlers

import (
	"github.com/SscSPs/kas_kelas_app/cmd/docs"
	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/middleware"
	"github.com/SscSPs/kas_kelas_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes wires every route group onto the engine.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Uploaded proof files are served statically.
	r.Static(cfg.ProofURLBase, cfg.ProofDir)

	registerAuthRoutes(r, cfg, services)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes groups every entity surface under /api/v1 behind JWT auth.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerClassRoutes(v1, services.Class)
	RegisterPaymentRoutes(v1, services.Payment)
	registerExpenseRoutes(v1, services.Expense)
	registerKasSettingRoutes(v1, services.KasSetting)
	registerNotificationRoutes(v1, services.Notification)
	registerActivityLogRoutes(v1, services.ActivityLog)
	RegisterSaldoRoutes(v1, services.Saldo)
}

// setupSwaggerRoutes serves the API docs outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
