package viewmodels

import "strconv"

// Customer is a view model for customer display
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	FullName  string
	Phone     string
	Notes     string
}

// URL is the customer's detail page.
func (c Customer) URL() string {
	return "/" + strconv.FormatInt(c.ID, 10)
}

// BestCustomer is a view model for the best customers ranking
type BestCustomer struct {
	Customer
	ReservationCount int64
}

// Reservation is a view model for reservation display
type Reservation struct {
	ID        int64
	StartAt   string // display form
	NumGuests int
	Notes     string
}

// CustomerForm carries a customer form's values and field errors.
type CustomerForm struct {
	Customer Customer
	Errors   map[string]string
}

// IsNew reports whether the form creates a customer.
func (f CustomerForm) IsNew() bool {
	return f.Customer.ID == 0
}
