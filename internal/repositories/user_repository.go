package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"inventory_dashboard_backend/internal/models"
)

// UserRepository defines the user lookups needed by authentication.
type UserRepository interface {
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(userID int64) (*models.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, password_hash, email, full_name, role, is_active, created_at, updated_at`

func (r *userRepository) getUser(query string, arg interface{}) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.FullName,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting user: %v", ErrDataSource, err)
	}
	return &u, nil
}

func (r *userRepository) GetUserByUsername(username string) (*models.User, error) {
	return r.getUser(`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *userRepository) GetUserByID(userID int64) (*models.User, error) {
	return r.getUser(`SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
}
