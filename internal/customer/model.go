package customer

// Customer is a restaurant patron. ID is zero until the customer is first
// saved and never changes afterwards.
type Customer struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name" validate:"required"`
	LastName  string `db:"last_name" validate:"required"`
	Phone     string `db:"phone"`
	Notes     string `db:"notes"`
}

// FullName returns "First Last".
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// BestCustomer is a customer ranked by how many reservations they hold.
type BestCustomer struct {
	Customer
	ReservationCount int64 `db:"reservation_count"`
}
