package server

import (
	"net/http"

	"github.com/jordanwl/covid-19-bot/docs"
	"github.com/jordanwl/covid-19-bot/internal/handler"
	"github.com/jordanwl/covid-19-bot/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Webhook *handler.WebhookHandler
	Resolve *handler.ResolveHandler
}

// NewRouter builds the gin engine. gatherer backs /metrics.
func NewRouter(h Handlers, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.POST("/callback", h.Webhook.Callback)
	r.GET("/resolve", h.Resolve.Resolve)
	r.GET("/locate", h.Resolve.Locate)

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	return r
}
