package artists

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

func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name                    string `json:"name"`
		Biography               string `json:"biography"`
		Awards                  string `json:"awards"`
		ExhibitionsParticipated int    `json:"exhibitions_participated"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Store.AddArtist(req.Name, req.Biography, req.Awards, req.ExhibitionsParticipated)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.Store.GetArtists()
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return
	}
	if err := h.Store.DeleteArtist(uint(id)); err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
