package exhibitions

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

func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Title     string `json:"title"`
		Theme     string `json:"theme"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Store.CreateExhibition(req.Title, req.Theme, req.StartDate, req.EndDate)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.Store.GetExhibitions()
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) AddArtwork(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		ArtworkID uint `json:"artwork_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.AddArtworkToExhibition(id, req.ArtworkID); err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"exhibition_id": id, "artwork_id": req.ArtworkID})
}

func (h *Handler) AddVisitorReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Review       string `json:"review"`
		ReviewerName string `json:"reviewer_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviewID, err := h.Store.AddVisitorReview(id, req.Review, req.ReviewerName)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": reviewID})
}

func (h *Handler) AddPressReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Review          string `json:"review"`
		PublicationName string `json:"publication_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviewID, err := h.Store.AddPressReview(id, req.Review, req.PublicationName)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": reviewID})
}

func (h *Handler) ListVisitorReviews(c *gin.Context) {
	rows, err := h.Store.GetVisitorReviews()
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ListPressReviews(c *gin.Context) {
	rows, err := h.Store.GetPressReviews()
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
