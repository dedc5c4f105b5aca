package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, username, password, email)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Username, user.Password, user.Email,
	)
	return err
}

func (r *PostgresUserRepository) ExistsByUsername(username string) (bool, error) {
	query := `SELECT 1 FROM users WHERE username=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, username)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByUsername(username string) (*User, error) {
	return r.findBy(context.Background(), `username=$1`, username)
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findBy(ctx, `id=$1`, id)
}

func (r *PostgresUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*User, error) {
	return r.findBy(ctx, `google_id=$1`, googleID)
}

func (r *PostgresUserRepository) findBy(ctx context.Context, where string, arg any) (*User, error) {
	query := `
		SELECT id, username, password,
		       COALESCE(email, ''),
		       COALESCE(google_id, ''),
		       COALESCE(google_access_token, ''),
		       COALESCE(google_refresh_token, ''),
		       created_at
		FROM users WHERE ` + where

	row := r.db.QueryRow(ctx, query, arg)

	user := &User{}
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Email,
		&user.GoogleID,
		&user.GoogleAccessToken,
		&user.GoogleRefreshToken,
		&user.CreatedAt,
	); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *PostgresUserRepository) UpdateGoogleCredentials(
	ctx context.Context,
	userID, googleID, accessToken, refreshToken string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET google_id = $1,
		    google_access_token = $2,
		    google_refresh_token = $3
		WHERE id = $4
	`, googleID, accessToken, refreshToken, userID)

	return err
}
