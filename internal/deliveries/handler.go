package deliveries

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"delivery-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the extraction pipeline.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches delivery routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extractions", h.createExtraction)
	rg.GET("/deliveries", h.listDeliveries)
	rg.GET("/deliveries/:id", h.getDelivery)
}

type extractionRequest struct {
	EmailText string `json:"email_text"`
}

func (h *Handler) createExtraction(c *gin.Context) {
	var req extractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be JSON with email_text", nil)
		return
	}
	// An empty submission never reaches the extraction service.
	if strings.TrimSpace(req.EmailText) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email_text is required", nil)
		return
	}

	stored, err := h.Svc.Process(c.Request.Context(), req.EmailText)
	if err != nil {
		var transportErr *TransportError
		var malformedErr *MalformedResponseError
		var persistErr *PersistenceError
		switch {
		case errors.Is(err, ErrEmptyEmail):
			respond.Error(c, http.StatusBadRequest, "validation_error", "email_text is required", nil)
		case errors.As(err, &transportErr):
			c.Set("failedStage", "extracting")
			respond.Error(c, http.StatusBadGateway, "transport_error", "extraction service unavailable", nil)
		case errors.As(err, &malformedErr):
			c.Set("failedStage", "parsing")
			respond.Error(c, http.StatusUnprocessableEntity, "malformed_response", "extraction reply was not a valid delivery record", gin.H{
				"raw": malformedErr.Raw,
			})
		case errors.As(err, &persistErr):
			c.Set("failedStage", "persisting")
			respond.Error(c, http.StatusInternalServerError, "persistence_error", "failed to store delivery record", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process submission", nil)
		}
		return
	}

	c.Set("deliveryId", stored.ID)
	respond.Created(c, stored)
}

func (h *Handler) getDelivery(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "delivery id must be an integer", nil)
		return
	}

	stored, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "delivery not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch delivery", nil)
		}
		return
	}

	respond.OK(c, stored)
}

func (h *Handler) listDeliveries(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list deliveries", nil)
		return
	}

	respond.OK(c, gin.H{
		"deliveries": rows,
		"limit":      limit,
		"offset":     offset,
	})
}
