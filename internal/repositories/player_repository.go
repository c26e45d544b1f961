package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"napoli_club_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// PlayerRepository defines the interface for player-related database operations.
type PlayerRepository interface {
	CreatePlayer(executor SQLExecutor, player *models.Player) (int64, error)
	GetPlayerByID(id int64) (*models.Player, error)
	GetPlayers(idNumber *string) ([]models.Player, error)
	UpdatePlayer(executor SQLExecutor, player *models.Player) error
	DeletePlayer(executor SQLExecutor, id int64) error
}

type playerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *sql.DB) PlayerRepository {
	return &playerRepository{db: db}
}

const playerColumns = `id, id_number, first_name, last_name, nationality, gender, school, previous_club,
	years_of_training, age_group, notes, position, goals, assists,
	mother_name, mother_phone, mother_email, father_name, father_phone, father_email,
	amount_owed, amount_paid`

func scanPlayer(s interface{ Scan(dest ...interface{}) error }, player *models.Player) error {
	err := s.Scan(
		&player.ID, &player.IDNumber, &player.FirstName, &player.LastName, &player.Nationality,
		&player.Gender, &player.School, &player.PreviousClub,
		&player.YearsOfTraining, &player.AgeGroup, &player.Notes,
		&player.Position, &player.Goals, &player.Assists,
		&player.MotherName, &player.MotherPhone, &player.MotherEmail,
		&player.FatherName, &player.FatherPhone, &player.FatherEmail,
		&player.AmountOwed, &player.AmountPaid,
	)
	if err != nil {
		return err
	}
	// Balance is derived, never stored.
	player.RecomputeBalance()
	return nil
}

// CreatePlayer inserts a new player into the database.
func (r *playerRepository) CreatePlayer(executor SQLExecutor, player *models.Player) (int64, error) {
	query := `INSERT INTO players (id_number, first_name, last_name, nationality, gender, school, previous_club,
	            years_of_training, age_group, notes, position, goals, assists,
	            mother_name, mother_phone, mother_email, father_name, father_phone, father_email,
	            amount_owed, amount_paid)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	          RETURNING id`

	err := executor.QueryRow(query,
		player.IDNumber, player.FirstName, player.LastName, player.Nationality, player.Gender,
		player.School, player.PreviousClub, player.YearsOfTraining, player.AgeGroup, player.Notes,
		player.Position, player.Goals, player.Assists,
		player.MotherName, player.MotherPhone, player.MotherEmail,
		player.FatherName, player.FatherPhone, player.FatherEmail,
		player.AmountOwed, player.AmountPaid,
	).Scan(&player.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return 0, fmt.Errorf("%w: creating player: %v", ErrDatabaseError, err)
	}
	player.RecomputeBalance()
	return player.ID, nil
}

// GetPlayerByID retrieves a player by their ID.
func (r *playerRepository) GetPlayerByID(id int64) (*models.Player, error) {
	player := &models.Player{}
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	err := scanPlayer(r.db.QueryRow(query, id), player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting player by ID %d: %v", ErrDatabaseError, id, err)
	}
	return player, nil
}

// GetPlayers retrieves all players, optionally filtered by exact id_number.
func (r *playerRepository) GetPlayers(idNumber *string) ([]models.Player, error) {
	players := []models.Player{}

	query := `SELECT ` + playerColumns + ` FROM players`
	var args []interface{}
	if idNumber != nil && *idNumber != "" {
		query += ` WHERE id_number = $1`
		args = append(args, *idNumber)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying players: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var player models.Player
		if err := scanPlayer(rows, &player); err != nil {
			return nil, fmt.Errorf("%w: scanning player: %v", ErrDatabaseError, err)
		}
		players = append(players, player)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating player rows: %v", ErrDatabaseError, err)
	}
	return players, nil
}

// UpdatePlayer updates an existing player in the database.
func (r *playerRepository) UpdatePlayer(executor SQLExecutor, player *models.Player) error {
	query := `UPDATE players SET
	            id_number = $1, first_name = $2, last_name = $3, nationality = $4, gender = $5,
	            school = $6, previous_club = $7, years_of_training = $8, age_group = $9, notes = $10,
	            position = $11, goals = $12, assists = $13,
	            mother_name = $14, mother_phone = $15, mother_email = $16,
	            father_name = $17, father_phone = $18, father_email = $19,
	            amount_owed = $20, amount_paid = $21
	          WHERE id = $22`

	result, err := executor.Exec(query,
		player.IDNumber, player.FirstName, player.LastName, player.Nationality, player.Gender,
		player.School, player.PreviousClub, player.YearsOfTraining, player.AgeGroup, player.Notes,
		player.Position, player.Goals, player.Assists,
		player.MotherName, player.MotherPhone, player.MotherEmail,
		player.FatherName, player.FatherPhone, player.FatherEmail,
		player.AmountOwed, player.AmountPaid, player.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return fmt.Errorf("%w: updating player ID %d: %v", ErrDatabaseError, player.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating player ID %d: %v", ErrDatabaseError, player.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	player.RecomputeBalance()
	return nil
}

// DeletePlayer removes a player from the database. Owned documents are
// removed by the ON DELETE CASCADE constraint on documents.player_id.
func (r *playerRepository) DeletePlayer(executor SQLExecutor, id int64) error {
	query := `DELETE FROM players WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting player ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting player ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
