package schedule

import (
	"time"

	"roomboard/models"

	"go.uber.org/zap"
)

// BoardService computes render-ready board state from a feed snapshot.
type BoardService interface {
	Grid(snap models.Snapshot, measuredBounds []float64) models.Grid
	Now(measuredBounds []float64) models.NowIndicator
	VisibleBlockKeys(snap models.Snapshot) []string
}

// DefaultBoardService is the concrete implementation. Zone pins the
// now-indicator to a fixed reference timezone independent of the host's
// local zone.
type DefaultBoardService struct {
	Window Window
	Clock  Clock
	Zone   *time.Location
	Logger *zap.Logger
}
