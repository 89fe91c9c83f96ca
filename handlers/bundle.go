package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Board endpoints.
	GetGridHandler       gin.HandlerFunc
	GetNowHandler        gin.HandlerFunc
	GetSnapshotHandler   gin.HandlerFunc
	GetAnimationsHandler gin.HandlerFunc
}
