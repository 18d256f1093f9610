package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

const pgUniqueViolation = "23505"

// uniqueViolation reports whether err is a postgres unique-constraint
// violation, optionally on one specific constraint.
func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// slugTaken is the uniqueness check the slug assigner runs against one
// table's slug namespace.
func slugTaken(ctx context.Context, db *pgxpool.Pool, op, table, slug string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE slug = $1)", table),
		slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}
