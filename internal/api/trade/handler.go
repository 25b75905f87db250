package trade

import (
	"net/http"

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

func (h *Handler) Sell(c *gin.Context) {
	var req struct {
		ArtworkID uint    `json:"artwork_id"`
		BuyerName string  `json:"buyer_name"`
		Price     float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.SellArtwork(req.ArtworkID, req.BuyerName, req.Price); err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"artwork_id": req.ArtworkID})
}

func (h *Handler) Rent(c *gin.Context) {
	var req struct {
		ArtworkID  uint   `json:"artwork_id"`
		RenterName string `json:"renter_name"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.RentArtwork(req.ArtworkID, req.RenterName, req.StartDate, req.EndDate); err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"artwork_id": req.ArtworkID})
}

func (h *Handler) ListSales(c *gin.Context) {
	rows, err := h.Store.GetSales()
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ListRentals(c *gin.Context) {
	rows, err := h.Store.GetRentals()
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
