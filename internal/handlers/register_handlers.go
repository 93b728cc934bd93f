package handlers

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/tvance/txengine/internal/core/domain"
	portssvc "github.com/tvance/txengine/internal/core/ports/services"
	"github.com/tvance/txengine/internal/middleware"
	"github.com/tvance/txengine/internal/platform/config"
)

// NewRouter builds the Gin engine for serve mode: global middleware plus the
// transaction and account routes over the shared processor.
func NewRouter(cfg *config.Config, logger *slog.Logger, processor portssvc.ProcessorSvcFacade) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	registerKindValidation()

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	r.Use(middleware.RateLimit(limiter.New(limitermemory.NewStore(), rate)))

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")
	registerTransactionRoutes(v1, processor)
	registerAccountRoutes(v1, processor)

	return r, nil
}

// registerKindValidation installs the txkind binding rule used by
// SubmitTransactionRequest.
func registerKindValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("txkind", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseTransactionKind(fl.Field().String())
			return err == nil
		})
	}
}
