package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopscout/backend/internal/domain"
	"github.com/shopscout/backend/internal/usecase"
	"go.uber.org/zap"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search   *usecase.SearchService
	shipping *usecase.ShippingService
	promo    *usecase.PromoService
	returns  *usecase.ReturnsService
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	search *usecase.SearchService,
	shipping *usecase.ShippingService,
	promo *usecase.PromoService,
	returns *usecase.ReturnsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		search:   search,
		shipping: shipping,
		promo:    promo,
		returns:  returns,
		logger:   logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopscout-backend",
		"version": "1.0.0",
	})
}

// SearchProducts handles product search requests across all registered sites
func (h *Handler) SearchProducts(c *gin.Context) {
	var req domain.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	products, err := h.search.SearchProducts(c.Request.Context(), req.Query, req.Filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("product search failed", zap.String("query", req.Query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"count":    len(products),
		"products": products,
	})
}

// ComparePrices handles per-store price comparison requests
func (h *Handler) ComparePrices(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'name' is required"})
		return
	}

	comparisons, err := h.search.ComparePrices(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("price comparison failed", zap.String("product", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "price comparison failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":     name,
		"count":       len(comparisons),
		"comparisons": comparisons,
	})
}

// EstimateShipping handles shipping estimate requests
func (h *Handler) EstimateShipping(c *gin.Context) {
	var req domain.ShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	estimate := h.shipping.EstimateShipping(&req.Product, req.ZipCode, req.TargetDate)
	c.JSON(http.StatusOK, estimate)
}

// CheckPromo handles promo code validation requests
func (h *Handler) CheckPromo(c *gin.Context) {
	var req domain.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	result := h.promo.CheckPromo(req.Code, req.BasePrice)
	c.JSON(http.StatusOK, result)
}

// GetReturnPolicy handles return policy lookups by store domain
func (h *Handler) GetReturnPolicy(c *gin.Context) {
	website := c.Param("website")

	policy := h.returns.ReturnPolicy(website)
	c.JSON(http.StatusOK, gin.H{
		"website": website,
		"policy":  policy,
	})
}
