package web

import (
	"winsbygroup.com/lunchly/internal/customer"
	"winsbygroup.com/lunchly/internal/reservation"
	vm "winsbygroup.com/lunchly/internal/viewmodels"
)

// FromDomainCustomer converts a domain customer to view model
func FromDomainCustomer(c customer.Customer) vm.Customer {
	return vm.Customer{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Phone:     c.Phone,
		Notes:     c.Notes,
	}
}

// FromDomainCustomers converts a slice of domain customers to view models
func FromDomainCustomers(customers []customer.Customer) []vm.Customer {
	result := make([]vm.Customer, len(customers))
	for i, c := range customers {
		result[i] = FromDomainCustomer(c)
	}
	return result
}

func FromDomainBestCustomers(best []customer.BestCustomer) []vm.BestCustomer {
	result := make([]vm.BestCustomer, len(best))
	for i, b := range best {
		result[i] = vm.BestCustomer{
			Customer:         FromDomainCustomer(b.Customer),
			ReservationCount: b.ReservationCount,
		}
	}
	return result
}

func FromDomainReservations(res []reservation.Reservation) []vm.Reservation {
	result := make([]vm.Reservation, len(res))
	for i, r := range res {
		result[i] = vm.Reservation{
			ID:        r.ID,
			StartAt:   r.FormattedStartAt(),
			NumGuests: r.NumGuests,
			Notes:     r.Notes,
		}
	}
	return result
}
