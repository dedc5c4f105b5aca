package website

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, website *Website) error {
	if website.ID == "" {
		website.ID = uuid.New().String()
	}
	if website.CreatedAt.IsZero() {
		website.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO websites (id, user_id, url, site_url, permission_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		website.ID,
		website.UserID,
		website.URL,
		website.SiteURL,
		website.PermissionLevel,
		website.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Website, error) {
	website := &Website{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, url, site_url, permission_level, created_at
		FROM websites
		WHERE id = $1
	`, id).Scan(
		&website.ID,
		&website.UserID,
		&website.URL,
		&website.SiteURL,
		&website.PermissionLevel,
		&website.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return website, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Website, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, url, site_url, permission_level, created_at
		FROM websites
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*Website{}
	for rows.Next() {
		website := &Website{}
		if err := rows.Scan(
			&website.ID,
			&website.UserID,
			&website.URL,
			&website.SiteURL,
			&website.PermissionLevel,
			&website.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, website)
	}

	return result, rows.Err()
}
