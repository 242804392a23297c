package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/text/unicode/norm"

	"winsbygroup.com/lunchly/internal/apperr"
	"winsbygroup.com/lunchly/internal/reservation"
	"winsbygroup.com/lunchly/internal/validation"
)

// bestCustomerLimit caps the GetBest ranking.
const bestCustomerLimit = 10

// ErrEmptySearch is returned by Search for blank input. No query is run;
// callers should send the user back to the full list.
var ErrEmptySearch = errors.New("empty search")

// ReservationFinder looks up a customer's reservations.
type ReservationFinder interface {
	GetForCustomer(ctx context.Context, customerID int64) ([]reservation.Reservation, error)
}

type Service struct {
	repo         Repository
	db           *sqlx.DB
	reservations ReservationFinder
}

func NewService(db *sqlx.DB, reservations ReservationFinder) *Service {
	return &Service{
		db:           db,
		repo:         New(db),
		reservations: reservations,
	}
}

func (s *Service) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// All returns every customer ordered by last name, then first name.
func (s *Service) All(ctx context.Context) ([]Customer, error) {
	return s.repo.GetAll(ctx)
}

// GetBest returns up to ten customers with the most reservations, most first.
func (s *Service) GetBest(ctx context.Context) ([]BestCustomer, error) {
	return s.repo.GetBest(ctx, bestCustomerLimit)
}

// Search splits text on a single space and returns customers whose first or
// last name equals either of the first two terms. Further terms are ignored.
func (s *Service) Search(ctx context.Context, text string) ([]Customer, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptySearch
	}

	names := strings.Split(norm.NFC.String(text), " ")
	var second *string
	if len(names) > 1 {
		second = &names[1]
	}

	out, err := s.repo.Search(ctx, names[0], second)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, apperr.NotFound("No Customer Found, Try A Different Search")
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Customer, error) {
	return s.repo.Get(ctx, id)
}

// GetReservations returns the reservations held by c. An unsaved customer
// has none.
func (s *Service) GetReservations(ctx context.Context, c *Customer) ([]reservation.Reservation, error) {
	if c.ID == 0 {
		return []reservation.Reservation{}, nil
	}
	return s.reservations.GetForCustomer(ctx, c.ID)
}

// Save inserts c when it has no ID yet, assigning the generated ID, and
// otherwise updates every mutable field of the existing row.
func (s *Service) Save(ctx context.Context, c *Customer) error {
	c.FirstName = norm.NFC.String(c.FirstName)
	c.LastName = norm.NFC.String(c.LastName)

	if err := validation.Struct(c); err != nil {
		return err
	}

	var id int64
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		if c.ID != 0 {
			return s.repo.Update(ctx, tx, c)
		}
		var err error
		id, err = s.repo.Create(ctx, tx, c)
		return err
	})
	if err != nil {
		return err
	}

	if c.ID == 0 {
		c.ID = id
	}
	return nil
}
