package artworks

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

func (h *Handler) Acquire(c *gin.Context) {
	var req AcquireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Store.AcquireArtwork(gallery.AcquireArtworkInput{
		Title:           req.Title,
		YearCreated:     req.YearCreated,
		Technique:       req.Technique,
		Dimensions:      req.Dimensions,
		Description:     req.Description,
		Genre:           req.Genre,
		ArtistID:        req.ArtistID,
		ProvenanceEntry: req.ProvenanceEntry,
		Price:           req.Price,
	})
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.Store.GetArtworks()
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.Store.UpdateArtworkStatus(id, req.Status)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": count})
}

func (h *Handler) UpdatePrice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.Store.UpdateArtworkPrice(id, req.Price)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": count})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteArtwork(id); err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) Provenance(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	rows, err := h.Store.GetProvenance(id)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) RecordMovement(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Store.RecordMovement(id, req.FromLocation, req.ToLocation, req.Purpose, req.ResponsiblePerson)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"artwork_id": id})
}

func (h *Handler) ListMovements(c *gin.Context) {
	rows, err := h.Store.GetMovements()
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) AddDocument(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	docID, err := h.Store.AddDocument(id, req.DocumentType, req.FilePath)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": docID})
}

func (h *Handler) ListDocuments(c *gin.Context) {
	rows, err := h.Store.GetDocuments()
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
