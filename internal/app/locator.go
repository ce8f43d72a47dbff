// ABOUTME: Current-location lookup used when the app starts
// ABOUTME: StaticLocator answers from configuration instead of a device

package app

import (
	"context"
	"errors"

	"github.com/harper/workouts/internal/models"
)

// ErrLocationUnavailable is returned when no current location is known.
var ErrLocationUnavailable = errors.New("current location unavailable")

// Locator resolves the user's current coordinate.
type Locator interface {
	Locate(ctx context.Context) (models.Coordinate, error)
}

// StaticLocator returns a fixed coordinate. A nil Coord means unknown.
type StaticLocator struct {
	Coord *models.Coordinate
}

// Locate implements Locator.
func (l StaticLocator) Locate(ctx context.Context) (models.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinate{}, err
	}
	if l.Coord == nil {
		return models.Coordinate{}, ErrLocationUnavailable
	}
	return *l.Coord, nil
}
