package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"searchscout/internal/common/observability"
)

// NewRouter wires the handler into a gin engine with recovery,
// request-id, and metrics middleware.
func NewRouter(h *Handler, obs *observability.Observability) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Metrics(obs))

	r.POST("/search", h.Search)
	r.POST("/price-comparison", h.PriceComparison)
	r.POST("/restaurant-search", h.RestaurantSearch)
	r.POST("/restaurant-price-comparison", h.RestaurantPriceComparison)

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
