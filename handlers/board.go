package handlers

import (
	"net/http"
	"strconv"
	"time"

	"roomboard/services/animator"
	"roomboard/services/feed"
	"roomboard/services/schedule"
	"roomboard/utils"

	"github.com/gin-gonic/gin"
)

// BoardHandler serves the computed board state to display clients.
type BoardHandler struct {
	Feed      feed.SnapshotSource
	Board     schedule.BoardService
	Animation *animator.Animator
}

// NewBoardHandler wires the board endpoints.
func NewBoardHandler(src feed.SnapshotSource, board schedule.BoardService, anim *animator.Animator) *BoardHandler {
	return &BoardHandler{Feed: src, Board: board, Animation: anim}
}

// GetGridHandler returns the full render-ready grid plus the now-indicator.
// Display clients that have measured their real column layout pass the
// boundary percents as repeated "col" query params for pixel-true
// indicator placement.
func (h *BoardHandler) GetGridHandler(c *gin.Context) {
	bounds, ok := parseColumnBounds(c)
	if !ok {
		return
	}

	snap := h.Feed.Current()
	c.JSON(http.StatusOK, gin.H{
		"grid": h.Board.Grid(snap, bounds),
		"now":  h.Board.Now(bounds),
	})
}

// GetNowHandler returns the now-indicator alone, for clients refreshing
// the marker every second without rebuilding the grid.
func (h *BoardHandler) GetNowHandler(c *gin.Context) {
	bounds, ok := parseColumnBounds(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Board.Now(bounds))
}

// GetSnapshotHandler returns the raw last-known-good snapshot with the
// latest poll status. Intended for debugging displays.
func (h *BoardHandler) GetSnapshotHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"snapshot": h.Feed.Current(),
		"poll":     h.Feed.Status(),
	})
}

// GetAnimationsHandler returns the currently active decorative animations
// keyed by block key.
func (h *BoardHandler) GetAnimationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"animations": h.Animation.Active(time.Now())})
}

func parseColumnBounds(c *gin.Context) ([]float64, bool) {
	raw := c.QueryArray("col")
	if len(raw) == 0 {
		return nil, true
	}
	bounds := make([]float64, 0, len(raw))
	for _, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid column bound", v)
			return nil, false
		}
		bounds = append(bounds, f)
	}
	return bounds, true
}
