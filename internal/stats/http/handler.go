package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/stats"
)

type Handler struct {
	service stats.Service
}

func NewHandler(service stats.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Export streams all statistics as a CSV attachment.
func (h *Handler) Export(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=\"statistics.csv\"")
	c.Status(http.StatusOK)

	if err := h.service.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers are already written, nothing left to report to the client.
		return
	}
}
