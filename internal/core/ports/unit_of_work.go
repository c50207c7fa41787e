package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle. Every mutating
// use case runs inside exactly one UnitOfWork transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrganizationRepository returns an OrganizationRepository bound to the
	// current transaction.
	OrganizationRepository() OrganizationRepository

	// MembershipRepository returns a MembershipRepository bound to the
	// current transaction.
	MembershipRepository() MembershipRepository

	// HiringRequestRepository returns a HiringRequestRepository bound to the
	// current transaction.
	HiringRequestRepository() HiringRequestRepository

	// AssignmentRepository returns an AssignmentRepository bound to the
	// current transaction.
	AssignmentRepository() AssignmentRepository

	// PaymentRepository returns a PaymentRepository bound to the current
	// transaction.
	PaymentRepository() PaymentRepository

	// OrderStore returns an OrderStore bound to the current transaction.
	OrderStore() OrderStore
}
