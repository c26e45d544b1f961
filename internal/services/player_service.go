package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"napoli_club_backend/internal/models"
	"napoli_club_backend/internal/repositories"
	"napoli_club_backend/pkg/utils"

	"github.com/shopspring/decimal"
)

// --- Custom Service Errors for Player ---
var (
	ErrPlayerNotFound = errors.New("player not found")
)

// Field length limits, matching the players table schema.
const (
	maxLenIDNumber = 13
	maxLenName     = 100
	maxLenGender   = 50
	maxLenPosition = 50
	maxLenPhone    = 20
)

// --- Player DTOs ---

// CreatePlayerRequest carries a new player payload. Only id_number is
// required; everything else is optional-with-default.
type CreatePlayerRequest struct {
	IDNumber        string           `json:"id_number"`
	FirstName       *string          `json:"first_name"`
	LastName        *string          `json:"last_name"`
	Nationality     *string          `json:"nationality"`
	Gender          *string          `json:"gender"`
	School          *string          `json:"school"`
	PreviousClub    *string          `json:"previous_club"`
	YearsOfTraining *int             `json:"years_of_training"`
	AgeGroup        *string          `json:"age_group"`
	Notes           *string          `json:"notes"`
	Position        *string          `json:"position"`
	Goals           *int             `json:"goals"`
	Assists         *int             `json:"assists"`
	MotherName      *string          `json:"mother_name"`
	MotherPhone     *string          `json:"mother_phone"`
	MotherEmail     *string          `json:"mother_email"`
	FatherName      *string          `json:"father_name"`
	FatherPhone     *string          `json:"father_phone"`
	FatherEmail     *string          `json:"father_email"`
	AmountOwed      *decimal.Decimal `json:"amount_owed"`
	AmountPaid      *decimal.Decimal `json:"amount_paid"`
}

// UpdatePlayerRequest carries a partial or full player update; absent
// fields keep their stored values.
type UpdatePlayerRequest struct {
	IDNumber        *string          `json:"id_number"`
	FirstName       *string          `json:"first_name"`
	LastName        *string          `json:"last_name"`
	Nationality     *string          `json:"nationality"`
	Gender          *string          `json:"gender"`
	School          *string          `json:"school"`
	PreviousClub    *string          `json:"previous_club"`
	YearsOfTraining *int             `json:"years_of_training"`
	AgeGroup        *string          `json:"age_group"`
	Notes           *string          `json:"notes"`
	Position        *string          `json:"position"`
	Goals           *int             `json:"goals"`
	Assists         *int             `json:"assists"`
	MotherName      *string          `json:"mother_name"`
	MotherPhone     *string          `json:"mother_phone"`
	MotherEmail     *string          `json:"mother_email"`
	FatherName      *string          `json:"father_name"`
	FatherPhone     *string          `json:"father_phone"`
	FatherEmail     *string          `json:"father_email"`
	AmountOwed      *decimal.Decimal `json:"amount_owed"`
	AmountPaid      *decimal.Decimal `json:"amount_paid"`
}

// --- PlayerService Interface ---
type PlayerService interface {
	CreatePlayer(req CreatePlayerRequest) (*models.Player, error)
	GetPlayerByID(playerID int64) (*models.Player, error)
	GetPlayers(idNumber *string) ([]models.Player, error)
	UpdatePlayer(playerID int64, req UpdatePlayerRequest) (*models.Player, error)
	DeletePlayer(playerID int64) error
}

// --- playerService Implementation ---
type playerService struct {
	playerRepo repositories.PlayerRepository
	db         *sql.DB
}

// NewPlayerService creates a new instance of PlayerService.
func NewPlayerService(repo repositories.PlayerRepository, db *sql.DB) PlayerService {
	return &playerService{
		playerRepo: repo,
		db:         db,
	}
}

// validatePlayer checks the merged entity against the field constraints and
// returns the accumulated field-level messages.
func validatePlayer(p *models.Player) FieldErrors {
	fieldErrs := FieldErrors{}

	if strings.TrimSpace(p.IDNumber) == "" {
		fieldErrs.Add("id_number", msgFieldRequired)
	} else if len(p.IDNumber) > maxLenIDNumber {
		fieldErrs.Add("id_number", msgMaxLength(maxLenIDNumber))
	}

	for field, value := range map[string]string{
		"first_name":    p.FirstName,
		"last_name":     p.LastName,
		"nationality":   p.Nationality,
		"school":        p.School,
		"previous_club": p.PreviousClub,
	} {
		if len(value) > maxLenName {
			fieldErrs.Add(field, msgMaxLength(maxLenName))
		}
	}

	if p.Gender != nil && len(*p.Gender) > maxLenGender {
		fieldErrs.Add("gender", msgMaxLength(maxLenGender))
	}
	if len(p.Position) > maxLenPosition {
		fieldErrs.Add("position", msgMaxLength(maxLenPosition))
	}

	if !models.IsValidAgeGroup(p.AgeGroup) {
		fieldErrs.Add("age_group", msgInvalidChoice(p.AgeGroup))
	}

	for field, value := range map[string]*string{
		"mother_name": p.MotherName,
		"father_name": p.FatherName,
	} {
		if value != nil && len(*value) > maxLenName {
			fieldErrs.Add(field, msgMaxLength(maxLenName))
		}
	}
	for field, value := range map[string]*string{
		"mother_phone": p.MotherPhone,
		"father_phone": p.FatherPhone,
	} {
		if value != nil && len(*value) > maxLenPhone {
			fieldErrs.Add(field, msgMaxLength(maxLenPhone))
		}
	}
	for field, value := range map[string]*string{
		"mother_email": p.MotherEmail,
		"father_email": p.FatherEmail,
	} {
		if value != nil && *value != "" && !utils.IsValidEmail(*value) {
			fieldErrs.Add(field, msgInvalidEmail)
		}
	}

	if len(fieldErrs) == 0 {
		return nil
	}
	return fieldErrs
}

// applyPlayerUpdate copies every present request field onto the entity.
func applyPlayerUpdate(p *models.Player, req UpdatePlayerRequest) {
	if req.IDNumber != nil {
		p.IDNumber = strings.TrimSpace(*req.IDNumber)
	}
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Nationality != nil {
		p.Nationality = *req.Nationality
	}
	if req.Gender != nil {
		p.Gender = req.Gender
	}
	if req.School != nil {
		p.School = *req.School
	}
	if req.PreviousClub != nil {
		p.PreviousClub = *req.PreviousClub
	}
	if req.YearsOfTraining != nil {
		p.YearsOfTraining = *req.YearsOfTraining
	}
	if req.AgeGroup != nil {
		p.AgeGroup = *req.AgeGroup
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if req.Position != nil {
		p.Position = *req.Position
	}
	if req.Goals != nil {
		p.Goals = *req.Goals
	}
	if req.Assists != nil {
		p.Assists = *req.Assists
	}
	if req.MotherName != nil {
		p.MotherName = req.MotherName
	}
	if req.MotherPhone != nil {
		p.MotherPhone = req.MotherPhone
	}
	if req.MotherEmail != nil {
		p.MotherEmail = req.MotherEmail
	}
	if req.FatherName != nil {
		p.FatherName = req.FatherName
	}
	if req.FatherPhone != nil {
		p.FatherPhone = req.FatherPhone
	}
	if req.FatherEmail != nil {
		p.FatherEmail = req.FatherEmail
	}
	if req.AmountOwed != nil {
		p.AmountOwed = *req.AmountOwed
	}
	if req.AmountPaid != nil {
		p.AmountPaid = *req.AmountPaid
	}
}

// duplicateIDNumberErrors maps a repository duplicate-key failure on the
// id_number constraint to the field-level message clients expect.
func duplicateIDNumberErrors() FieldErrors {
	fieldErrs := FieldErrors{}
	fieldErrs.Add("id_number", "player with this id number already exists.")
	return fieldErrs
}

func (s *playerService) CreatePlayer(req CreatePlayerRequest) (*models.Player, error) {
	zero := decimal.New(0, -2) // 0.00

	player := &models.Player{
		IDNumber:    strings.TrimSpace(req.IDNumber),
		AgeGroup:    models.AgeGroupU12,
		AmountOwed:  zero,
		AmountPaid:  zero,
		MotherName:  req.MotherName,
		MotherPhone: req.MotherPhone,
		MotherEmail: req.MotherEmail,
		FatherName:  req.FatherName,
		FatherPhone: req.FatherPhone,
		FatherEmail: req.FatherEmail,
		Gender:      req.Gender,
	}
	if req.FirstName != nil {
		player.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		player.LastName = *req.LastName
	}
	if req.Nationality != nil {
		player.Nationality = *req.Nationality
	}
	if req.School != nil {
		player.School = *req.School
	}
	if req.PreviousClub != nil {
		player.PreviousClub = *req.PreviousClub
	}
	if req.YearsOfTraining != nil {
		player.YearsOfTraining = *req.YearsOfTraining
	}
	if req.AgeGroup != nil {
		player.AgeGroup = *req.AgeGroup
	}
	if req.Notes != nil {
		player.Notes = *req.Notes
	}
	if req.Position != nil {
		player.Position = *req.Position
	}
	if req.Goals != nil {
		player.Goals = *req.Goals
	}
	if req.Assists != nil {
		player.Assists = *req.Assists
	}
	if req.AmountOwed != nil {
		player.AmountOwed = *req.AmountOwed
	}
	if req.AmountPaid != nil {
		player.AmountPaid = *req.AmountPaid
	}

	if fieldErrs := validatePlayer(player); fieldErrs != nil {
		return nil, fieldErrs
	}

	id, err := s.playerRepo.CreatePlayer(s.db, player)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, duplicateIDNumberErrors()
		}
		return nil, fmt.Errorf("failed to create player in repository: %w", err)
	}
	return s.playerRepo.GetPlayerByID(id)
}

func (s *playerService) GetPlayerByID(playerID int64) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}
	return player, nil
}

func (s *playerService) GetPlayers(idNumber *string) ([]models.Player, error) {
	players, err := s.playerRepo.GetPlayers(idNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(playerID int64, req UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player for update: %w", err)
	}

	applyPlayerUpdate(player, req)

	if fieldErrs := validatePlayer(player); fieldErrs != nil {
		return nil, fieldErrs
	}

	err = s.playerRepo.UpdatePlayer(s.db, player)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, duplicateIDNumberErrors()
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to update player in repository: %w", err)
	}
	return s.playerRepo.GetPlayerByID(playerID)
}

func (s *playerService) DeletePlayer(playerID int64) error {
	err := s.playerRepo.DeletePlayer(s.db, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}
