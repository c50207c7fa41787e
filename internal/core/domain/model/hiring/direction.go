package hiring

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Direction tags which party initiated a hiring request.
type Direction int

const (
	// DirectionUnknown represents an invalid or undefined direction.
	DirectionUnknown Direction = iota

	// Invitation is a request from an organization to a user.
	Invitation

	// Application is a request from a user to an organization.
	Application
)

func getDirectionStrings() map[Direction]string {
	return map[Direction]string{
		DirectionUnknown: "Unknown",
		Invitation:       "Invitation",
		Application:      "Application",
	}
}

// Validate checks the Direction is either Invitation or Application.
func (d Direction) Validate() error {
	if d != Invitation && d != Application {
		return errs.NewValueIsInvalidErrorWithCause("direction",
			fmt.Errorf("%d is not a valid direction", d))
	}
	return nil
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if str, ok := getDirectionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}
