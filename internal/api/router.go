package api

import (
	"net/http"

	"solar-quote/internal/api/handlers"
	"solar-quote/internal/api/middleware"
	"solar-quote/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options configures the HTTP router.
type Options struct {
	Store          *store.Store
	Logger         *zap.SugaredLogger
	AllowedOrigins []string
}

// NewRouter wires all routes and middleware. The returned handler includes CORS.
func NewRouter(opts Options) http.Handler {
	if opts.Store == nil {
		opts.Store = store.New()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	router := gin.New()
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.ErrorHandler())

	quoteHandler := handlers.NewQuoteHandler(opts.Store)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/calculate", quoteHandler.Calculate)

		api.GET("/manufacturers", handlers.ListManufacturers)
		api.GET("/seasons", handlers.ListSeasons)
		api.GET("/parameters", handlers.ListParameters)

		api.POST("/quotes", quoteHandler.CreateQuote)
		api.GET("/quotes", quoteHandler.ListQuotes)
		api.GET("/quotes/stats", quoteHandler.Stats)
		api.GET("/quotes/:id", quoteHandler.GetQuote)
		api.PUT("/quotes/:id/params", quoteHandler.UpdateParams)
		api.DELETE("/quotes/:id", quoteHandler.DeleteQuote)
		api.GET("/quotes/:id/cashflows.csv", quoteHandler.CashFlowsCSV)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return middleware.CORS(router, opts.AllowedOrigins)
}
