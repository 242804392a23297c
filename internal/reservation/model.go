package reservation

import "time"

// startAtLayout is how reservation times are shown to staff.
const startAtLayout = "January 2 2006, 3:04 pm"

// Reservation is a booking held by a customer. ID is zero until saved.
type Reservation struct {
	ID         int64     `db:"id"`
	CustomerID int64     `db:"customer_id" validate:"required"`
	StartAt    time.Time `db:"start_at" validate:"required"`
	NumGuests  int       `db:"num_guests" validate:"min=1"`
	Notes      string    `db:"notes"`
}

// FormattedStartAt returns the start time in display form.
func (r Reservation) FormattedStartAt() string {
	return r.StartAt.Format(startAtLayout)
}
