package reservation

import (
	"context"

	"github.com/jmoiron/sqlx"

	"winsbygroup.com/lunchly/internal/validation"
)

type Service struct {
	repo Repository
	db   *sqlx.DB
}

func NewService(db *sqlx.DB) *Service {
	return &Service{
		db:   db,
		repo: New(db),
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

// GetForCustomer returns the customer's reservations, earliest first.
func (s *Service) GetForCustomer(ctx context.Context, customerID int64) ([]Reservation, error) {
	return s.repo.GetForCustomer(ctx, customerID)
}

func (s *Service) Get(ctx context.Context, id int64) (*Reservation, error) {
	return s.repo.Get(ctx, id)
}

// Save inserts r when it has no ID yet, assigning the new ID, and updates
// the existing row otherwise.
func (s *Service) Save(ctx context.Context, r *Reservation) error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var id int64
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		if r.ID != 0 {
			return s.repo.Update(ctx, tx, r)
		}
		var err error
		id, err = s.repo.Create(ctx, tx, r)
		return err
	})
	if err != nil {
		return err
	}

	if r.ID == 0 {
		r.ID = id
	}
	return nil
}
