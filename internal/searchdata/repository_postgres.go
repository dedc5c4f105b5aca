package searchdata

import (
	"context"
	"encoding/json"
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

func (r *PostgresRepository) Create(ctx context.Context, snapshot *Snapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now()
	}

	data, err := json.Marshal(snapshot.Data)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO search_data (id, website_id, data, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		snapshot.ID,
		snapshot.WebsiteID,
		data,
		snapshot.StartDate,
		snapshot.EndDate,
		snapshot.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) Find(ctx context.Context, websiteID, startDate, endDate string) (*Snapshot, error) {
	snapshot := &Snapshot{}
	var data []byte

	err := r.db.QueryRow(ctx, `
		SELECT id, website_id, data, start_date, end_date, created_at
		FROM search_data
		WHERE website_id = $1 AND start_date = $2 AND end_date = $3
		ORDER BY created_at DESC
		LIMIT 1
	`, websiteID, startDate, endDate).Scan(
		&snapshot.ID,
		&snapshot.WebsiteID,
		&data,
		&snapshot.StartDate,
		&snapshot.EndDate,
		&snapshot.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &snapshot.Data); err != nil {
		return nil, err
	}
	return snapshot, nil
}
