package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the resource handlers against the given DB handle.
func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	r.Static("/public", "./public")

	sys := h.NewSystemHandler(db)
	r.GET("/health", sys.Health)
	r.GET("/db-check", sys.DBCheck)

	trips := h.NewTripHandler(db)
	r.POST("/trips", trips.Create)
	r.GET("/trips", trips.List)
	r.GET("/trips/:id", trips.GetByID)

	customers := h.NewCustomerHandler(db)
	r.POST("/customers", customers.Create)
	r.GET("/customers", customers.List)
	r.GET("/customers/search", customers.Search)
	r.POST("/customers/redeem", customers.Redeem)
	r.GET("/customers/:id/points", customers.PointsHistory)

	bookings := h.NewBookingHandler(db)
	r.POST("/bookings", bookings.Create)
	r.GET("/bookings", bookings.Search)
	r.GET("/bookings/:id/voucher", bookings.Voucher)

	packages := h.NewPackageHandler(db)
	r.POST("/packages", packages.Create)
	r.GET("/packages", packages.List)
	r.GET("/packages/:id", packages.GetByID)

	discounts := h.NewDiscountTypeHandler(db)
	r.POST("/discount-types", discounts.Create)
	r.GET("/discount-types", discounts.ListNames)

	return r
}
