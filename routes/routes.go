package routes

import (
	"net/http"

	"roomboard/handlers"
	"roomboard/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBoardRoutes registers the display-facing board endpoints.
func RegisterBoardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/board")
	{
		api.GET("/grid", hb.GetGridHandler)
		api.GET("/now", hb.GetNowHandler)
		api.GET("/snapshot", hb.GetSnapshotHandler)
		api.GET("/animations", hb.GetAnimationsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes wires CORS and all route groups. The board is a public
// read-only surface, so any origin may GET it.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
	}))

	RegisterHealthRoute(r)
	RegisterBoardRoutes(r, hb)
}
