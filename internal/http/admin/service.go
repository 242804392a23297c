package admin

import (
	"context"

	"winsbygroup.com/lunchly/internal/customer"
	"winsbygroup.com/lunchly/internal/reservation"
)

// Service is the front desk's view of the domain services, shared by the
// JSON API and the web UI.
type Service struct {
	customers    *customer.Service
	reservations *reservation.Service
}

func NewService(c *customer.Service, r *reservation.Service) *Service {
	return &Service{
		customers:    c,
		reservations: r,
	}
}

// -------------------------
// Customers
// -------------------------

func (s *Service) GetCustomers(ctx context.Context) ([]customer.Customer, error) {
	return s.customers.All(ctx)
}

func (s *Service) GetBestCustomers(ctx context.Context) ([]customer.BestCustomer, error) {
	return s.customers.GetBest(ctx)
}

func (s *Service) SearchCustomers(ctx context.Context, text string) ([]customer.Customer, error) {
	return s.customers.Search(ctx, text)
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*customer.Customer, error) {
	return s.customers.Get(ctx, id)
}

func (s *Service) CreateCustomer(ctx context.Context, req *CustomerRequest) (*customer.Customer, error) {
	c := &customer.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Notes:     req.Notes,
	}
	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCustomer replaces every mutable field of customer id.
func (s *Service) UpdateCustomer(ctx context.Context, id int64, req *CustomerRequest) (*customer.Customer, error) {
	c, err := s.customers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.FirstName = req.FirstName
	c.LastName = req.LastName
	c.Phone = req.Phone
	c.Notes = req.Notes

	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// -------------------------
// Reservations
// -------------------------

// GetCustomerReservations returns the customer and their reservations. The
// customer must exist.
func (s *Service) GetCustomerReservations(ctx context.Context, customerID int64) (*customer.Customer, []reservation.Reservation, error) {
	c, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	res, err := s.customers.GetReservations(ctx, c)
	if err != nil {
		return nil, nil, err
	}
	return c, res, nil
}

func (s *Service) GetReservation(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return s.reservations.Get(ctx, id)
}

func (s *Service) CreateReservation(ctx context.Context, customerID int64, req *ReservationRequest) (*reservation.Reservation, error) {
	r := &reservation.Reservation{
		CustomerID: customerID,
		StartAt:    req.StartAt,
		NumGuests:  req.NumGuests,
		Notes:      req.Notes,
	}
	if err := s.reservations.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// -------------------------
// Mapping
// -------------------------

func toCustomerResponse(c customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Phone:     c.Phone,
		Notes:     c.Notes,
	}
}

func toCustomerResponses(cs []customer.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(cs))
	for i, c := range cs {
		out[i] = toCustomerResponse(c)
	}
	return out
}

func toReservationResponse(r reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		StartAt:     r.StartAt,
		StartAtText: r.FormattedStartAt(),
		NumGuests:   r.NumGuests,
		Notes:       r.Notes,
	}
}

func toReservationResponses(rs []reservation.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(rs))
	for i, r := range rs {
		out[i] = toReservationResponse(r)
	}
	return out
}
