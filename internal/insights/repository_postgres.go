package insights

import (
	"context"

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

func (r *PostgresRepository) Create(ctx context.Context, insight *Insight) error {
	if insight.ID == "" {
		insight.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO insights (id, website_id, type, title, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		insight.ID,
		insight.WebsiteID,
		insight.Type,
		insight.Title,
		insight.Description,
		insight.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) ListByWebsite(ctx context.Context, websiteID string) ([]*Insight, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, website_id, type, title, description, created_at
		FROM insights
		WHERE website_id = $1
	`, websiteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*Insight{}
	for rows.Next() {
		insight := &Insight{}
		if err := rows.Scan(
			&insight.ID,
			&insight.WebsiteID,
			&insight.Type,
			&insight.Title,
			&insight.Description,
			&insight.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, insight)
	}

	return result, rows.Err()
}

func (r *PostgresRepository) DeleteByWebsite(ctx context.Context, websiteID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM insights WHERE website_id = $1`, websiteID)
	return err
}

// Replace runs delete + insert in one transaction, so readers never see
// a half-replaced set and a crash cannot lose the old insights without
// committing the new ones.
func (r *PostgresRepository) Replace(ctx context.Context, websiteID string, insights []*Insight) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM insights WHERE website_id = $1`, websiteID); err != nil {
			return err
		}

		for _, insight := range insights {
			if insight.ID == "" {
				insight.ID = uuid.New().String()
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO insights (id, website_id, type, title, description, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			`,
				insight.ID,
				insight.WebsiteID,
				insight.Type,
				insight.Title,
				insight.Description,
				insight.CreatedAt,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
