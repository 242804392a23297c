package admin

import (
	"time"

	"winsbygroup.com/lunchly/internal/apperr"
)

// -------------------------
// Customer DTOs
// -------------------------

type CustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

type CustomerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

type BestCustomerResponse struct {
	CustomerResponse
	ReservationCount int64 `json:"reservationCount"`
}

// -------------------------
// Reservation DTOs
// -------------------------

type ReservationRequest struct {
	StartAt   time.Time `json:"startAt"`
	NumGuests int       `json:"numGuests"`
	Notes     string    `json:"notes"`
}

type ReservationResponse struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	StartAt     time.Time `json:"startAt"`
	StartAtText string    `json:"startAtText"`
	NumGuests   int       `json:"numGuests"`
	Notes       string    `json:"notes"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []apperr.FieldError `json:"fields,omitempty"`
}
