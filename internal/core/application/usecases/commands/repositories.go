// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrganizationRepoFactory provides access to the organization repository within a transaction.
	OrganizationRepoFactory interface {
		OrganizationRepository() ports.OrganizationRepository
	}

	// MembershipRepoFactory provides access to the membership repository within a transaction.
	MembershipRepoFactory interface {
		MembershipRepository() ports.MembershipRepository
	}

	// HiringRequestRepoFactory provides access to the hiring request repository within a transaction.
	HiringRequestRepoFactory interface {
		HiringRequestRepository() ports.HiringRequestRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderStoreFactory provides access to storefront order data within a transaction.
	OrderStoreFactory interface {
		OrderStore() ports.OrderStore
	}

	// OrganizationUoW manages transactions for organization-only operations.
	OrganizationUoW interface {
		TxManager
		OrganizationRepoFactory
	}

	// OrganizationUoWFactory creates new organization unit of work instances.
	OrganizationUoWFactory interface {
		Create() OrganizationUoW
	}

	// HiringUoW manages transactions for hiring negotiation operations.
	// Spans hiring requests, memberships, and the organizations they involve.
	HiringUoW interface {
		TxManager
		OrganizationRepoFactory
		MembershipRepoFactory
		HiringRequestRepoFactory
	}

	// HiringUoWFactory creates new hiring unit of work instances.
	HiringUoWFactory interface {
		Create() HiringUoW
	}

	// DeliveryUoW manages transactions for the merchant-facing delivery flow.
	// Spans assignments, the organizations they are requested from, and the
	// storefront order data they denormalize.
	DeliveryUoW interface {
		TxManager
		OrganizationRepoFactory
		AssignmentRepoFactory
		OrderStoreFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// FulfillmentUoW manages transactions for the worker-driven fulfillment
	// path, including payment derivation on completion.
	FulfillmentUoW interface {
		TxManager
		OrganizationRepoFactory
		MembershipRepoFactory
		AssignmentRepoFactory
		PaymentRepoFactory
		OrderStoreFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
