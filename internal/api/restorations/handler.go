package restorations

import (
	"net/http"
	"strconv"

	"gallery-app/internal/api/apierr"
	"gallery-app/internal/gallery"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *gallery.Store
}

func NewHandler(store *gallery.Store) *Handler {
	return &Handler{Store: store}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) Start(c *gin.Context) {
	var req struct {
		ArtworkID       uint    `json:"artwork_id"`
		RestorerName    string  `json:"restorer_name"`
		ConditionBefore string  `json:"condition_before"`
		Cost            float64 `json:"cost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Store.RecordRestorationState(req.ArtworkID, req.RestorerName, req.ConditionBefore, req.Cost)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		ConditionAfter string `json:"condition_after"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.CompleteRestoration(id, req.ConditionAfter); err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": id})
}

func (h *Handler) AddMaterialUsage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		MaterialID   uint `json:"material_id"`
		QuantityUsed int  `json:"quantity_used"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.AddRestorationMaterial(id, req.MaterialID, req.QuantityUsed); err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"restoration_id": id, "material_id": req.MaterialID})
}

func (h *Handler) CreateMaterial(c *gin.Context) {
	var req struct {
		Name      string  `json:"name"`
		UnitPrice float64 `json:"unit_price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Store.AddMaterial(req.Name, req.UnitPrice)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.Store.GetRestorations()
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ListMaterials(c *gin.Context) {
	rows, err := h.Store.GetMaterials()
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
