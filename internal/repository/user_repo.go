package repository

import (
	"context"
	"errors"
	"fmt"

	"foodist_api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned by Create when the insert violates a
// uniqueness constraint (username or api_token).
var ErrDuplicate = errors.New("duplicate value violates a unique constraint")

const pgUniqueViolation = "23505"

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	ExistsWithToken(ctx context.Context, apiToken string) (bool, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, password_hash, first_name, last_name, image_url, api_token, authority, enabled, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		user.Username, user.PasswordHash, user.FirstName, user.LastName,
		user.ImageURL, user.APIToken, user.Authority, user.Enabled, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("failed to create user: %w", ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByUsername retrieves a user by their principal name
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, password_hash, first_name, last_name, image_url, api_token, authority, enabled, created_at
            FROM users WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.ImageURL, &user.APIToken, &user.Authority, &user.Enabled, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, password_hash, first_name, last_name, image_url, api_token, authority, enabled, created_at
            FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.ImageURL, &user.APIToken, &user.Authority, &user.Enabled, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// ExistsWithToken reports whether any user already holds the given API
// token. Supports the uniqueness check during registration.
func (r *userRepository) ExistsWithToken(ctx context.Context, apiToken string) (bool, error) {
	var exists bool
	sql := `SELECT EXISTS(SELECT 1 FROM users WHERE api_token = $1)`
	err := r.db.QueryRow(ctx, sql, apiToken).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check api token existence: %w", err)
	}
	return exists, nil
}
