package http

import (
	"time"

	"github.com/shopspring/decimal"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type idResponse struct {
	ID string `json:"id"`
}

type location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code,omitempty"`
}

type merchantDelivery struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	OrganizationID string          `json:"organization_id"`
	Status         string          `json:"status"`
	Fee            decimal.Decimal `json:"fee"`
}

type organizationDelivery struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	WorkerID     *string         `json:"worker_id,omitempty"`
	Status       string          `json:"status"`
	Fee          decimal.Decimal `json:"fee"`
	Dropoff      location        `json:"dropoff"`
	Instructions string          `json:"instructions,omitempty"`
}

type workerDelivery struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"order_id"`
	Status       string     `json:"status"`
	Address      address    `json:"address"`
	Dropoff      location   `json:"dropoff"`
	Instructions string     `json:"instructions,omitempty"`
	AssignedAt   *time.Time `json:"assigned_at,omitempty"`
}

type workerPayment struct {
	ID            string          `json:"id"`
	AssignmentID  string          `json:"assignment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Base          decimal.Decimal `json:"base"`
	DistanceBonus decimal.Decimal `json:"distance_bonus"`
	WeightBonus   decimal.Decimal `json:"weight_bonus"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
