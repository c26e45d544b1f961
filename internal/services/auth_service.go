package services

import (
	"database/sql"
	"errors"
	"fmt"

	"napoli_club_backend/internal/models"
	"napoli_club_backend/internal/repositories"
	"napoli_club_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Auth ---
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserAlreadyExists  = errors.New("user already exists for this player")
)

// defaultPlayerPassword is assigned when a player is registered as a user.
// Kept from the original system; accounts are expected to change it on
// first real use.
const defaultPlayerPassword = "napoliNSC"

// --- Auth DTOs ---

// LoginRequest DTO. Fields are not tagged required; missing credentials
// simply fail authentication with the generic message.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse DTO. Role is derived from the staff flag, never stored.
type LoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// --- AuthService Interface ---
type AuthService interface {
	Login(req LoginRequest) (*LoginResponse, error)
	RegisterPlayerAsUser(playerID int64) error
	FindUserByToken(key string) (*models.User, error)
}

// --- authService Implementation ---
type authService struct {
	authRepo   repositories.AuthRepository
	playerRepo repositories.PlayerRepository
	db         *sql.DB // Used as SQLExecutor for single repo calls, or for managing transactions
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authRepo repositories.AuthRepository, playerRepo repositories.PlayerRepository, db *sql.DB) AuthService {
	return &authService{
		authRepo:   authRepo,
		playerRepo: playerRepo,
		db:         db,
	}
}

// Login authenticates the credentials and returns the user's token. The
// same token is returned on every login: it is created once and reused.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *authService) Login(req LoginRequest) (*LoginResponse, error) {
	user, storedHashedPassword, err := s.authRepo.FindUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHashedPassword), []byte(req.Password)); err != nil {
		// err is bcrypt.ErrMismatchedHashAndPassword for wrong password
		return nil, ErrInvalidCredentials
	}

	token, err := s.getOrCreateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:     token.Key,
		Role:      user.Role(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

// getOrCreateToken returns the user's existing token or creates one. A
// concurrent first login can lose the insert race; the winner's token is
// fetched and returned so issuance stays idempotent.
func (s *authService) getOrCreateToken(userID int64) (*models.AuthToken, error) {
	token, err := s.authRepo.GetTokenByUserID(userID)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	token, err = s.authRepo.CreateToken(s.db, userID, key)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return s.authRepo.GetTokenByUserID(userID)
		}
		return nil, fmt.Errorf("failed to create token: %w", err)
	}
	return token, nil
}

// RegisterPlayerAsUser creates a login account for an existing player:
// username is the player's id_number, names are copied, and the fixed
// default password is assigned. The account is a non-staff one.
func (s *authService) RegisterPlayerAsUser(playerID int64) error {
	player, err := s.playerRepo.GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to resolve player for registration: %w", err)
	}

	exists, err := s.authRepo.UserExistsByUsername(player.IDNumber)
	if err != nil {
		return fmt.Errorf("failed to check for existing user: %w", err)
	}
	if exists {
		return ErrUserAlreadyExists
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(defaultPlayerPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  player.IDNumber,
		FirstName: player.FirstName,
		LastName:  player.LastName,
		IsStaff:   false,
	}
	if _, err := s.authRepo.CreateUser(s.db, user, string(hashedPasswordBytes)); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// FindUserByToken resolves an opaque bearer token to its user, for the
// authentication middleware.
func (s *authService) FindUserByToken(key string) (*models.User, error) {
	user, err := s.authRepo.FindUserByToken(key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	return user, nil
}
