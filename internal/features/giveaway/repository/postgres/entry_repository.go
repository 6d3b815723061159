package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/features/giveaway/repository"
)

const entryColumns = `e.id, e.giveaway_id, e.participant_name, e.reddit_name, e.reddit_profile_link, e.ip_address, e.created_at`

type entryRepository struct {
	db *sql.DB
}

func NewEntryRepository(db *sql.DB) repository.EntryRepository {
	return &entryRepository{db: db}
}

func scanEntry(row rowScanner) (*models.Entry, error) {
	var (
		e          models.Entry
		redditName sql.NullString
		redditLink sql.NullString
	)
	if err := row.Scan(&e.ID, &e.GiveawayID, &e.ParticipantName, &redditName, &redditLink, &e.IPAddress, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.RedditName = redditName.String
	e.RedditProfileLink = redditLink.String
	return &e, nil
}

// Create inserts the entry only while its giveaway is active. The giveaway
// row is read FOR SHARE, so an insert racing a draw waits for the draw's
// lock and then sees the committed status. Zero inserted rows are reported
// as repository.ErrGiveawayNotActive, a violation of the per-address unique
// index as repository.ErrDuplicateEntry.
func (r *entryRepository) Create(ctx context.Context, e *models.Entry) error {
	query := `
		INSERT INTO entries (id, giveaway_id, participant_name, reddit_name, reddit_profile_link, ip_address)
		SELECT $1::uuid, g.id, $3, $4, $5, $6
		FROM giveaways g
		WHERE g.id = $2 AND g.status = 'active'
		FOR SHARE
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.GiveawayID, e.ParticipantName, nullString(e.RedditName), nullString(e.RedditProfileLink), e.IPAddress,
	).Scan(&e.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return repository.ErrGiveawayNotActive
		case isUniqueViolation(err, constraintEntryAddress):
			return repository.ErrDuplicateEntry
		case isForeignKeyViolation(err, ""):
			return repository.ErrGiveawayNotFound
		}
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

func (r *entryRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries e WHERE e.id = $1`

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return e, nil
}

func (r *entryRepository) ExistsByAddress(ctx context.Context, giveawayID, address string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM entries WHERE giveaway_id = $1 AND ip_address = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, giveawayID, address).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing entry: %w", err)
	}
	return exists, nil
}

func (r *entryRepository) ListByGiveaway(ctx context.Context, giveawayID string) ([]*models.Entry, error) {
	return r.list(ctx, r.db, giveawayID)
}

func (r *entryRepository) ListByGiveawayTx(ctx context.Context, tx repository.Transaction, giveawayID string) ([]*models.Entry, error) {
	sqlTx, err := unwrapTx(tx)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, sqlTx, giveawayID)
}

// list returns entries in admission order.
func (r *entryRepository) list(ctx context.Context, q queryer, giveawayID string) ([]*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries e WHERE e.giveaway_id = $1 ORDER BY e.created_at, e.id`

	rows, err := q.QueryContext(ctx, query, giveawayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return entries, nil
}

func (r *entryRepository) CountByGiveaway(ctx context.Context, giveawayID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries WHERE giveaway_id = $1`, giveawayID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}
