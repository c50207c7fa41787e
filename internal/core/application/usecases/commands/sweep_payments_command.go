package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrSweepPaymentsCommandIsNotConstructed = errors.New(
		"SweepPaymentsCommand must be created via NewSweepPaymentsCommand constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be greater than 0")
)

// SweepPaymentsCommand represents a reconciliation pass that derives
// payments for completed assignments that have none, catching cases where
// the completion transaction's payment write was lost to a crash.
type SweepPaymentsCommand struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewSweepPaymentsCommand creates a command to run one reconciliation pass
// over at most limit assignments.
func NewSweepPaymentsCommand(limit int) (SweepPaymentsCommand, error) {
	cmd := SweepPaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLimit(limit); err != nil {
		return SweepPaymentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepPaymentsCommand) Validate() error {
	return c.guard.Validate(ErrSweepPaymentsCommandIsNotConstructed)
}

// Limit returns the maximum number of assignments processed in one pass.
func (c SweepPaymentsCommand) Limit() int {
	return c.limit
}

func (c *SweepPaymentsCommand) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	c.limit = limit
	return nil
}
