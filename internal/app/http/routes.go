package routes

import (
	"gallery-app/config"
	artistsapi "gallery-app/internal/api/artists"
	artworksapi "gallery-app/internal/api/artworks"
	authapi "gallery-app/internal/api/auth"
	exhibitionsapi "gallery-app/internal/api/exhibitions"
	restorationsapi "gallery-app/internal/api/restorations"
	tradeapi "gallery-app/internal/api/trade"
	visitorsapi "gallery-app/internal/api/visitors"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/gallery"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler. Listings are public; anything
// that writes sits behind the staff token and input sanitation.
func RegisterRoutes(r *gin.Engine, store *gallery.Store, cfg *config.Config) {
	artworks := artworksapi.NewHandler(store)
	artists := artistsapi.NewHandler(store)
	exhibitions := exhibitionsapi.NewHandler(store)
	restorations := restorationsapi.NewHandler(store)
	trade := tradeapi.NewHandler(store)
	visitors := visitorsapi.NewHandler(store)
	auth := authapi.NewHandler(cfg)

	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/login", auth.Login)
	public.POST("/visitors", visitors.Register)
	public.POST("/exhibitions/:id/visitor-reviews", exhibitions.AddVisitorReview)

	public.GET("/artworks", artworks.List)
	public.GET("/artists", artists.List)
	public.GET("/exhibitions", exhibitions.List)
	public.GET("/visitor-reviews", exhibitions.ListVisitorReviews)
	public.GET("/press-reviews", exhibitions.ListPressReviews)

	// Staff: record-keeping mutations and internal listings
	staff := r.Group("/")
	staff.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireRole("staff"))
	staff.Use(middleware.SanitizeInputMiddleware())

	staff.POST("/artists", artists.Create)
	staff.DELETE("/artists/:id", artists.Delete)

	staff.POST("/artworks", artworks.Acquire)
	staff.PUT("/artworks/:id/status", artworks.UpdateStatus)
	staff.PUT("/artworks/:id/price", artworks.UpdatePrice)
	staff.DELETE("/artworks/:id", artworks.Delete)
	staff.GET("/artworks/:id/provenance", artworks.Provenance)
	staff.POST("/artworks/:id/movements", artworks.RecordMovement)
	staff.GET("/movements", artworks.ListMovements)
	staff.POST("/artworks/:id/documents", artworks.AddDocument)
	staff.GET("/documents", artworks.ListDocuments)

	staff.POST("/exhibitions", exhibitions.Create)
	staff.POST("/exhibitions/:id/artworks", exhibitions.AddArtwork)
	staff.POST("/exhibitions/:id/press-reviews", exhibitions.AddPressReview)

	staff.POST("/restorations", restorations.Start)
	staff.POST("/restorations/:id/complete", restorations.Complete)
	staff.POST("/restorations/:id/materials", restorations.AddMaterialUsage)
	staff.GET("/restorations", restorations.List)
	staff.POST("/materials", restorations.CreateMaterial)
	staff.GET("/materials", restorations.ListMaterials)

	staff.POST("/sales", trade.Sell)
	staff.GET("/sales", trade.ListSales)
	staff.POST("/rentals", trade.Rent)
	staff.GET("/rentals", trade.ListRentals)

	staff.GET("/visitors", visitors.List)
}
