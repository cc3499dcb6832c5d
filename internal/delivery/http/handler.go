package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoproute/backend/internal/domain"
	"github.com/shoproute/backend/internal/usecase"
)

const serviceVersion = "1.0.0"

// ShoppingService is the use case surface the handlers depend on
type ShoppingService interface {
	SaveList(ctx context.Context, text string) (*domain.SaveListResult, error)
	CurrentList(ctx context.Context) (*domain.ShoppingList, error)
	Locate(ctx context.Context, items []string) ([]domain.ResolutionResult, error)
	PlanRoute(ctx context.Context, items []string) (*domain.Route, error)
	GetRoute(ctx context.Context, id string) (*domain.Route, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	shopping ShoppingService
}

// NewHandler creates a new HTTP handler. A nil service makes the API endpoints answer 503.
func NewHandler(shopping ShoppingService) *Handler {
	return &Handler{shopping: shopping}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shoproute-backend",
		"version": serviceVersion,
	})
}

// SaveList handles POST /api/v1/lists
func (h *Handler) SaveList(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var req domain.SaveListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: text is required"})
		return
	}

	result, err := h.shopping.SaveList(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrNoValidProducts) && result != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   errorMessage(err),
				"ignored": result.Ignored,
			})
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// CurrentList handles GET /api/v1/lists/current
func (h *Handler) CurrentList(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	list, err := h.shopping.CurrentList(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Locate handles POST /api/v1/locations
func (h *Handler) Locate(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	req, ok := bindItems(c)
	if !ok {
		return
	}

	results, err := h.shopping.Locate(c.Request.Context(), req.Items)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":   results,
		"unmatched": usecase.UnmatchedItems(results),
	})
}

// PlanRoute handles POST /api/v1/routes
func (h *Handler) PlanRoute(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	req, ok := bindItems(c)
	if !ok {
		return
	}

	route, err := h.shopping.PlanRoute(c.Request.Context(), req.Items)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, route)
}

// GetRoute handles GET /api/v1/routes/:id
func (h *Handler) GetRoute(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	route, err := h.shopping.GetRoute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, route)
}

func (h *Handler) ready(c *gin.Context) bool {
	if h.shopping == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Shopping service not configured"})
		return false
	}
	return true
}

// bindItems accepts an empty body as "use the saved list"
func bindItems(c *gin.Context) (domain.ItemsRequest, bool) {
	var req domain.ItemsRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return req, false
	}
	return req, true
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError || status == http.StatusBadGateway {
		log.Printf("[HTTP] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": errorMessage(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoItemsProvided),
		errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoSavedList),
		errors.Is(err, domain.ErrRouteNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoLocatableProducts),
		errors.Is(err, domain.ErrNoValidProducts):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrCatalogAPIFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoItemsProvided):
		return "Please give at least one product for the list"
	case errors.Is(err, domain.ErrNoSavedList):
		return "No shopping list saved yet"
	case errors.Is(err, domain.ErrNoValidProducts):
		return "None of the products exist in the store catalog"
	case errors.Is(err, domain.ErrNoLocatableProducts):
		return "No products with store coordinates were found"
	case errors.Is(err, domain.ErrRouteNotFound):
		return "Route not found or expired"
	case errors.Is(err, domain.ErrInvalidRequest):
		return "Invalid request parameters"
	case errors.Is(err, domain.ErrRateLimited):
		return "Rate limit exceeded"
	case errors.Is(err, domain.ErrCatalogAPIFailure):
		return "Store catalog temporarily unavailable"
	default:
		return "Internal server error"
	}
}
