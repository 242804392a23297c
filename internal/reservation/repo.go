package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"winsbygroup.com/lunchly/internal/apperr"
	"winsbygroup.com/lunchly/internal/database"
)

type Repository interface {
	GetForCustomer(ctx context.Context, customerID int64) ([]Reservation, error)
	Get(ctx context.Context, id int64) (*Reservation, error)
	Create(ctx context.Context, tx *sqlx.Tx, r *Reservation) (int64, error)
	Update(ctx context.Context, tx *sqlx.Tx, r *Reservation) error
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

func (r *repo) GetForCustomer(ctx context.Context, customerID int64) ([]Reservation, error) {
	out := []Reservation{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(getReservationsForCustomerSQL), customerID)
	if err != nil {
		return nil, fmt.Errorf("get reservations for customer: %w", err)
	}
	return out, nil
}

func (r *repo) Get(ctx context.Context, id int64) (*Reservation, error) {
	var res Reservation
	err := r.db.GetContext(ctx, &res, r.db.Rebind(getReservationSQL), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("No such reservation: %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

func (r *repo) Create(ctx context.Context, tx *sqlx.Tx, res *Reservation) (int64, error) {
	var id int64
	err := tx.GetContext(ctx, &id, tx.Rebind(createReservationSQL),
		res.CustomerID,
		res.StartAt.UTC(),
		res.NumGuests,
		res.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("create reservation: %w", mapConstraint(err, res))
	}
	return id, nil
}

func (r *repo) Update(ctx context.Context, tx *sqlx.Tx, res *Reservation) error {
	out, err := tx.ExecContext(ctx, tx.Rebind(updateReservationSQL),
		res.CustomerID,
		res.StartAt.UTC(),
		res.NumGuests,
		res.Notes,
		res.ID,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", mapConstraint(err, res))
	}
	n, err := out.RowsAffected()
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if n == 0 {
		return apperr.NotFound("No such reservation: %d", res.ID)
	}
	return nil
}

// mapConstraint turns storage constraint failures into caller-facing errors.
func mapConstraint(err error, res *Reservation) error {
	switch {
	case database.IsForeignKeyViolation(err):
		return &apperr.Error{
			Status:  apperr.ErrNotFound.Status,
			Message: fmt.Sprintf("No such customer: %d", res.CustomerID),
			Err:     err,
		}
	case database.IsCheckViolation(err):
		return &apperr.Error{
			Status:  apperr.ErrBadRequest.Status,
			Message: "num_guests must be at least 1",
			Err:     err,
		}
	}
	return err
}
