package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/features/giveaway/repository"
)

const giveawayColumns = `
	g.id, g.slug, g.title, g.description, g.creator_name, g.creator_secret_hash, g.allow_strict,
	g.divine_orb, g.exalted_orb, g.chaos_orb, g.mirror_of_kalandra, g.orb_of_alchemy,
	g.orb_of_augmentation, g.orb_of_chance, g.orb_of_transmutation, g.regal_orb, g.vaal_orb,
	g.annulment_orb, g.status, g.winner_id, g.created_at, g.updated_at`

type giveawayRepository struct {
	db *sql.DB
}

func NewGiveawayRepository(db *sql.DB) repository.GiveawayRepository {
	return &giveawayRepository{db: db}
}

func scanGiveaway(row rowScanner) (*models.Giveaway, error) {
	var (
		g           models.Giveaway
		description sql.NullString
		winnerID    sql.NullString
	)
	c := &g.Currencies
	err := row.Scan(
		&g.ID, &g.Slug, &g.Title, &description, &g.CreatorName, &g.CreatorSecretHash, &g.StrictMode,
		&c.DivineOrb, &c.ExaltedOrb, &c.ChaosOrb, &c.MirrorOfKalandra, &c.OrbOfAlchemy,
		&c.OrbOfAugmentation, &c.OrbOfChance, &c.OrbOfTransmutation, &c.RegalOrb, &c.VaalOrb,
		&c.AnnulmentOrb, &g.Status, &winnerID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}

	g.Description = description.String
	if winnerID.Valid {
		id := winnerID.String
		g.WinnerID = &id
	}
	return &g, nil
}

func (r *giveawayRepository) BeginTx(ctx context.Context) (repository.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &postgresTransaction{tx: tx}, nil
}

// Create inserts the giveaway and fills server-assigned timestamps.
// A slug collision is reported as repository.ErrSlugTaken.
func (r *giveawayRepository) Create(ctx context.Context, g *models.Giveaway) error {
	query := `
		INSERT INTO giveaways (id, slug, title, description, creator_name, creator_secret_hash, allow_strict,
			divine_orb, exalted_orb, chaos_orb, mirror_of_kalandra, orb_of_alchemy,
			orb_of_augmentation, orb_of_chance, orb_of_transmutation, regal_orb, vaal_orb,
			annulment_orb, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING created_at, updated_at
	`
	c := g.Currencies
	err := r.db.QueryRowContext(ctx, query,
		g.ID, g.Slug, g.Title, nullString(g.Description), g.CreatorName, g.CreatorSecretHash, g.StrictMode,
		c.DivineOrb, c.ExaltedOrb, c.ChaosOrb, c.MirrorOfKalandra, c.OrbOfAlchemy,
		c.OrbOfAugmentation, c.OrbOfChance, c.OrbOfTransmutation, c.RegalOrb, c.VaalOrb,
		c.AnnulmentOrb, g.Status,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, constraintGiveawaySlug) {
			return repository.ErrSlugTaken
		}
		return fmt.Errorf("failed to create giveaway: %w", err)
	}
	return nil
}

func (r *giveawayRepository) getOne(ctx context.Context, q queryer, query string, args ...interface{}) (*models.Giveaway, error) {
	g, err := scanGiveaway(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrGiveawayNotFound
		}
		return nil, fmt.Errorf("failed to get giveaway: %w", err)
	}
	return g, nil
}

func (r *giveawayRepository) GetByID(ctx context.Context, id string) (*models.Giveaway, error) {
	return r.getOne(ctx, r.db, `SELECT `+giveawayColumns+` FROM giveaways g WHERE g.id = $1`, id)
}

func (r *giveawayRepository) GetBySlug(ctx context.Context, slug string) (*models.Giveaway, error) {
	return r.getOne(ctx, r.db, `SELECT `+giveawayColumns+` FROM giveaways g WHERE g.slug = $1`, slug)
}

// GetByIDWithLock reads the giveaway with FOR UPDATE inside tx. Entry inserts
// for the same giveaway wait on the lock through their foreign key check.
func (r *giveawayRepository) GetByIDWithLock(ctx context.Context, tx repository.Transaction, id string) (*models.Giveaway, error) {
	sqlTx, err := unwrapTx(tx)
	if err != nil {
		return nil, err
	}
	return r.getOne(ctx, sqlTx, `SELECT `+giveawayColumns+` FROM giveaways g WHERE g.id = $1 FOR UPDATE`, id)
}

func (r *giveawayRepository) List(ctx context.Context, limit, offset int) ([]*models.Giveaway, error) {
	query := `SELECT ` + giveawayColumns + ` FROM giveaways g ORDER BY g.created_at DESC, g.id LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list giveaways: %w", err)
	}
	defer rows.Close()

	giveaways := make([]*models.Giveaway, 0)
	for rows.Next() {
		g, err := scanGiveaway(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan giveaway: %w", err)
		}
		giveaways = append(giveaways, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate giveaways: %w", err)
	}
	return giveaways, nil
}

func (r *giveawayRepository) UpdateStatus(ctx context.Context, id string, status models.GiveawayStatus) (*models.Giveaway, error) {
	query := `
		UPDATE giveaways g
		SET status = $2, winner_id = NULL, updated_at = NOW()
		WHERE g.id = $1
		RETURNING ` + giveawayColumns

	g, err := r.getOne(ctx, r.db, query, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrGiveawayNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update giveaway status: %w", err)
	}
	return g, nil
}

func (r *giveawayRepository) AssignWinner(ctx context.Context, id, entryID string) (*models.Giveaway, error) {
	return r.assignWinner(ctx, r.db, id, entryID)
}

func (r *giveawayRepository) AssignWinnerTx(ctx context.Context, tx repository.Transaction, id, entryID string) (*models.Giveaway, error) {
	sqlTx, err := unwrapTx(tx)
	if err != nil {
		return nil, err
	}
	return r.assignWinner(ctx, sqlTx, id, entryID)
}

// assignWinner writes winner_id and status together so no reader can see one
// without the other. The composite foreign key rejects entries of other giveaways.
func (r *giveawayRepository) assignWinner(ctx context.Context, q queryer, id, entryID string) (*models.Giveaway, error) {
	query := `
		UPDATE giveaways g
		SET winner_id = $2, status = 'drawn', updated_at = NOW()
		WHERE g.id = $1
		RETURNING ` + giveawayColumns

	g, err := r.getOne(ctx, q, query, id, entryID)
	if err != nil {
		if isForeignKeyViolation(err, constraintGiveawayWinner) {
			return nil, repository.ErrEntryNotFound
		}
		if errors.Is(err, repository.ErrGiveawayNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to assign winner: %w", err)
	}
	return g, nil
}
