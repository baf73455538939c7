package handler

import (
	"net/http"

	"github.com/cedricmorin1/Ordermanagement/internal/dto"
	"github.com/cedricmorin1/Ordermanagement/internal/service"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	summary  service.SummaryService
	progress service.ProgressService
}

func NewSummaryHandler(summary service.SummaryService, progress service.ProgressService) *SummaryHandler {
	return &SummaryHandler{summary: summary, progress: progress}
}

// Stats GET /api/stats?day=&date=
func (h *SummaryHandler) Stats(c *gin.Context) {
	var filter dto.OrderFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.progress.Stats(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary GET /api/summary?day=&date=
func (h *SummaryHandler) Summary(c *gin.Context) {
	var filter dto.OrderFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.summary.Summary(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Complete POST /api/summary/complete
func (h *SummaryHandler) Complete(c *gin.Context) {
	var sel dto.GroupSelector
	if !bindAndValidate(c, &sel) {
		return
	}
	resp, err := h.summary.MarkGroupComplete(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reset POST /api/summary/reset
func (h *SummaryHandler) Reset(c *gin.Context) {
	var sel dto.GroupSelector
	if !bindAndValidate(c, &sel) {
		return
	}
	resp, err := h.summary.MarkGroupIncomplete(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetQuantity POST /api/summary/quantity
func (h *SummaryHandler) SetQuantity(c *gin.Context) {
	var req dto.SetGroupQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.summary.SetGroupQuantity(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
