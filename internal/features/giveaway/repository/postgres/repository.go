package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"path-of-sharing/internal/features/giveaway/repository"
)

// SQLSTATE codes reported by PostgreSQL through *pq.Error.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"

	constraintGiveawaySlug   = "giveaways_slug_key"
	constraintEntryAddress   = "entries_giveaway_address_unique"
	constraintGiveawayWinner = "giveaways_winner_fkey"
)

type postgresTransaction struct {
	tx *sql.Tx
}

func (t *postgresTransaction) Commit() error {
	return t.tx.Commit()
}

func (t *postgresTransaction) Rollback() error {
	return t.tx.Rollback()
}

func unwrapTx(tx repository.Transaction) (*sql.Tx, error) {
	postgresTx, ok := tx.(*postgresTransaction)
	if !ok {
		return nil, fmt.Errorf("invalid transaction type %T", tx)
	}
	return postgresTx.tx, nil
}

// pqCode returns the SQLSTATE and constraint name of a lib/pq error.
func pqCode(err error) (pq.ErrorCode, string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, pqErr.Constraint
	}
	return "", ""
}

func isUniqueViolation(err error, constraint string) bool {
	code, name := pqCode(err)
	return code == codeUniqueViolation && (constraint == "" || name == constraint)
}

func isForeignKeyViolation(err error, constraint string) bool {
	code, name := pqCode(err)
	return code == codeForeignKeyViolation && (constraint == "" || name == constraint)
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}
