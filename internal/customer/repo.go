package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"winsbygroup.com/lunchly/internal/apperr"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Customer, error)
	GetBest(ctx context.Context, limit int) ([]BestCustomer, error)
	Search(ctx context.Context, first string, second *string) ([]Customer, error)
	Get(ctx context.Context, id int64) (*Customer, error)
	Create(ctx context.Context, tx *sqlx.Tx, c *Customer) (int64, error)
	Update(ctx context.Context, tx *sqlx.Tx, c *Customer) error
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

func (r *repo) GetAll(ctx context.Context) ([]Customer, error) {
	out := []Customer{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(getAllCustomersSQL))
	if err != nil {
		return nil, fmt.Errorf("get all customers: %w", err)
	}
	return out, nil
}

func (r *repo) GetBest(ctx context.Context, limit int) ([]BestCustomer, error) {
	out := []BestCustomer{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(getBestCustomersSQL), limit)
	if err != nil {
		return nil, fmt.Errorf("get best customers: %w", err)
	}
	return out, nil
}

// Search matches first or last name exactly against first, or against second
// when it is non-nil. A nil second term binds as NULL and matches nothing.
func (r *repo) Search(ctx context.Context, first string, second *string) ([]Customer, error) {
	out := []Customer{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(searchCustomersSQL), first, first, second, second)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return out, nil
}

func (r *repo) Get(ctx context.Context, id int64) (*Customer, error) {
	var c Customer
	err := r.db.GetContext(ctx, &c, r.db.Rebind(getCustomerSQL), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("No such customer: %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, tx *sqlx.Tx, c *Customer) (int64, error) {
	var id int64
	err := tx.GetContext(ctx, &id, tx.Rebind(createCustomerSQL),
		c.FirstName,
		c.LastName,
		c.Phone,
		c.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}
	return id, nil
}

func (r *repo) Update(ctx context.Context, tx *sqlx.Tx, c *Customer) error {
	res, err := tx.ExecContext(ctx, tx.Rebind(updateCustomerSQL),
		c.FirstName,
		c.LastName,
		c.Phone,
		c.Notes,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if n == 0 {
		return apperr.NotFound("No such customer: %d", c.ID)
	}
	return nil
}
