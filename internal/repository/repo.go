package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Shared storage outcomes. Services translate these into their own
// error codes; nothing above this package looks at driver errors.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("unique constraint violation")
)

const pgUniqueViolation = "23505"

// classify maps driver-level failures onto the package sentinels.
func classify(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrConflict
	}
	return err
}

type Repository struct {
	CustomerRepo CustomerRepositoryInterface
	ProductRepo  ProductRepositoryInterface
	OrderRepo    OrderRepositoryInterface
}

func New(db *sql.DB) *Repository {
	return &Repository{
		CustomerRepo: NewCustomerRepository(db),
		ProductRepo:  NewProductRepository(db),
		OrderRepo:    NewOrderRepository(db),
	}
}
