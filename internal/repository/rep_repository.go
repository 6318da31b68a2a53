package repository

import (
	"context"
	"fmt"

	"gift-fulfillment/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// repRepository implements the RepRepository interface using PostgreSQL.
type repRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRepRepository creates a new PostgreSQL-backed rep repository.
func NewRepRepository(pool *pgxpool.Pool, logger zerolog.Logger) RepRepository {
	return &repRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "rep").Logger(),
	}
}

// GetAll retrieves all reps ordered by last name.
func (r *repRepository) GetAll(ctx context.Context) ([]model.Rep, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, created_at, updated_at
		FROM reps
		ORDER BY last_name, first_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query reps")
		return nil, fmt.Errorf("failed to query reps: %w", err)
	}
	defer rows.Close()

	var reps []model.Rep
	for rows.Next() {
		var rep model.Rep
		err := rows.Scan(&rep.ID, &rep.FirstName, &rep.LastName, &rep.Email, &rep.Phone, &rep.CreatedAt, &rep.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan rep row")
			return nil, fmt.Errorf("failed to scan rep: %w", err)
		}
		reps = append(reps, rep)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating rep rows")
		return nil, fmt.Errorf("error iterating reps: %w", err)
	}

	return reps, nil
}

// GetByID retrieves a single rep by its ID.
func (r *repRepository) GetByID(ctx context.Context, id string) (*model.Rep, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, created_at, updated_at
		FROM reps
		WHERE id = $1
	`

	var rep model.Rep
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rep.ID, &rep.FirstName, &rep.LastName, &rep.Email, &rep.Phone, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("rep_id", id).Msg("rep not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("rep_id", id).Msg("failed to query rep")
		return nil, fmt.Errorf("failed to query rep: %w", err)
	}

	return &rep, nil
}
