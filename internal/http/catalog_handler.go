package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"english-tutor/internal/content"
	"english-tutor/internal/plan"
)

// CatalogHandler expone los planes y los topics disponibles.
type CatalogHandler struct {
	table *content.Table
}

func NewCatalogHandler(table *content.Table) *CatalogHandler {
	return &CatalogHandler{table: table}
}

// ListPlans maneja GET /plans.
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": plan.All()})
}

// ListTopics maneja GET /topics.
func (h *CatalogHandler) ListTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": h.table.Topics()})
}
