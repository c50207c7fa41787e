package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Coordinate represents a position value on the city grid.
type Coordinate int8

const (
	// LocationMinX is the minimum valid X coordinate on the city grid.
	LocationMinX Coordinate = 1
	// LocationMinY is the minimum valid Y coordinate on the city grid.
	LocationMinY Coordinate = 1
	// LocationMaxX is the maximum valid X coordinate on the city grid.
	LocationMaxX Coordinate = 100
	// LocationMaxY is the maximum valid Y coordinate on the city grid.
	LocationMaxY Coordinate = 100
)

// ErrLocationIsNotConstructed is returned when attempting to use an
// improperly initialized Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewRandomLocation constructors")

// Location represents a point on the city grid with validated coordinates.
// It is an immutable value object used to estimate delivery distance between
// an organization's depot and an order's drop-off point. The zero value is
// invalid; use the constructors.
type Location struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a Location with the specified coordinates. Both
// coordinates must be within [LocationMinX..LocationMaxX] and
// [LocationMinY..LocationMaxY].
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewRandomLocation creates a Location with random in-bounds coordinates.
// Useful in tests and for seeding demo data.
func NewRandomLocation() (Location, error) {
	x := Coordinate(rand.IntN(int(LocationMaxX-LocationMinX+1)) + int(LocationMinX)) //nolint:gosec // it's ok
	y := Coordinate(rand.IntN(int(LocationMaxY-LocationMinY+1)) + int(LocationMinY)) //nolint:gosec // it's ok
	return NewLocation(x, y)
}

// Validate checks the Location was created through a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the X coordinate.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the Y coordinate.
func (l Location) Y() Coordinate {
	return l.y
}

// String implements fmt.Stringer in the form "Location(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares two locations for equality. Both must be properly
// constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance calculates the Manhattan distance between two locations:
// |x1-x2| + |y1-y2|. Both must be properly constructed.
func (l Location) Distance(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := abs(l.x - other.x)
	dy := abs(l.y - other.y)
	return int(dx + dy), nil
}

// setX sets the x coordinate with validation.
// Pointer receiver enables self-encapsulated validation during construction.
func (l *Location) setX(x Coordinate) error {
	if x < LocationMinX || x > LocationMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
	}

	l.x = x
	return nil
}

// setY sets the y coordinate with validation.
func (l *Location) setY(y Coordinate) error {
	if y < LocationMinY || y > LocationMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMinY, LocationMaxY)
	}

	l.y = y
	return nil
}

func abs(x Coordinate) Coordinate {
	if x < 0 {
		return -x
	}
	return x
}
