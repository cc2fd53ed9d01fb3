package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "quickmed/database/repository/catalog"
	"quickmed/models"
	"quickmed/utils"
)

// CatalogHandler serves the service catalogue.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

// NewCatalogHandler wires the catalogue handler.
func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// List returns every service (GET /service).
func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, utils.InfraError("catalog read", err))
		return
	}
	c.JSON(http.StatusOK, services)
}

// Create configures a service definition (POST /service, admin).
func (h *CatalogHandler) Create(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.RespondError(c, utils.Errorf(utils.KindInvalidArgument, "invalid service payload"))
		return
	}
	if svc.Name == "" || len(svc.Slots) == 0 {
		utils.RespondError(c, utils.Errorf(utils.KindInvalidArgument, "name and slots are required"))
		return
	}

	if err := h.Repo.Upsert(c.Request.Context(), &svc); err != nil {
		utils.RespondError(c, utils.InfraError("catalog write", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true})
}
