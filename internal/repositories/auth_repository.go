package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"napoli_club_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// AuthRepository defines the interface for account and token database operations.
type AuthRepository interface {
	CreateUser(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error)
	FindUserByUsername(username string) (*models.User, string, error) // Returns User, HashedPassword, Error
	UserExistsByUsername(username string) (bool, error)
	FindUserByToken(key string) (*models.User, error)
	GetTokenByUserID(userID int64) (*models.AuthToken, error)
	CreateToken(executor SQLExecutor, userID int64, key string) (*models.AuthToken, error)
}

// authRepository implements the AuthRepository interface.
type authRepository struct {
	db *sql.DB // The direct database connection pool
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

// CreateUser inserts a new user into the database.
// It expects an SQLExecutor which can be a *sql.DB or *sql.Tx.
func (r *authRepository) CreateUser(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	query := `INSERT INTO users (username, password_hash, first_name, last_name, is_staff, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		user.Username, hashedPassword, user.FirstName, user.LastName, user.IsStaff, user.CreatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return user.ID, nil
}

// FindUserByUsername retrieves a user by their username.
// It returns the user model, their hashed password, and an error if any.
func (r *authRepository) FindUserByUsername(username string) (*models.User, string, error) {
	user := &models.User{}
	var hashedPassword string
	query := `SELECT id, username, password_hash, first_name, last_name, is_staff, created_at
	          FROM users WHERE username = $1`

	err := r.db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &hashedPassword, &user.FirstName, &user.LastName,
		&user.IsStaff, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: finding user by username %s: %v", ErrDatabaseError, username, err)
	}
	return user, hashedPassword, nil
}

// UserExistsByUsername reports whether a user with the given username exists.
func (r *authRepository) UserExistsByUsername(username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: checking user existence for username %s: %v", ErrDatabaseError, username, err)
	}
	return exists, nil
}

// FindUserByToken resolves an opaque token key to its owning user.
func (r *authRepository) FindUserByToken(key string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT u.id, u.username, u.first_name, u.last_name, u.is_staff, u.created_at
	          FROM users u
	          JOIN auth_tokens t ON t.user_id = u.id
	          WHERE t.key = $1`

	err := r.db.QueryRow(query, key).Scan(
		&user.ID, &user.Username, &user.FirstName, &user.LastName, &user.IsStaff, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding user by token: %v", ErrDatabaseError, err)
	}
	return user, nil
}

// GetTokenByUserID retrieves the token bound to a user, if one exists.
func (r *authRepository) GetTokenByUserID(userID int64) (*models.AuthToken, error) {
	token := &models.AuthToken{}
	query := `SELECT key, user_id, created_at FROM auth_tokens WHERE user_id = $1`

	err := r.db.QueryRow(query, userID).Scan(&token.Key, &token.UserID, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting token for user ID %d: %v", ErrDatabaseError, userID, err)
	}
	return token, nil
}

// CreateToken persists a new token for a user. A user has at most one token,
// enforced by the unique constraint on auth_tokens.user_id.
func (r *authRepository) CreateToken(executor SQLExecutor, userID int64, key string) (*models.AuthToken, error) {
	token := &models.AuthToken{Key: key, UserID: userID, CreatedAt: time.Now()}
	query := `INSERT INTO auth_tokens (key, user_id, created_at) VALUES ($1, $2, $3)`

	_, err := executor.Exec(query, token.Key, token.UserID, token.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return nil, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return nil, fmt.Errorf("%w: creating token for user ID %d: %v", ErrDatabaseError, userID, err)
	}
	return token, nil
}
