package handler

import (
	"net/http"

	"github.com/cedricmorin1/Ordermanagement/internal/apierror"
	"github.com/cedricmorin1/Ordermanagement/internal/dto"
	"github.com/cedricmorin1/Ordermanagement/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// List GET /api/admin-products
func (h *CatalogHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /api/admin-products
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateCatalogProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /api/admin-products/:id
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	var req dto.UpdateCatalogProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Update(c.Request.Context(), id, req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /api/admin-products/:id
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	if svcErr := h.svc.Delete(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé avec succès"})
}

// Import POST /api/admin-products/import
func (h *CatalogHandler) Import(c *gin.Context) {
	var req dto.ImportCatalogRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ImportCSV(c.Request.Context(), req.Data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
