package models

import "github.com/shopspring/decimal"

// Age group categories a player can be assigned to.
const (
	AgeGroupU12    = "U12"
	AgeGroupU14    = "U14"
	AgeGroupU17    = "U17"
	AgeGroupSenior = "SENIOR"
)

// AgeGroups lists the valid age group choices in a stable order.
var AgeGroups = []string{AgeGroupU12, AgeGroupU14, AgeGroupU17, AgeGroupSenior}

// IsValidAgeGroup reports whether s is one of the fixed age group choices.
func IsValidAgeGroup(s string) bool {
	for _, g := range AgeGroups {
		if s == g {
			return true
		}
	}
	return false
}

// Player represents a registered player of the club, including personal
// details, guardian contacts, performance counters and financial totals.
type Player struct {
	ID              int64   `json:"id" db:"id"`
	IDNumber        string  `json:"id_number" db:"id_number"`
	FirstName       string  `json:"first_name" db:"first_name"`
	LastName        string  `json:"last_name" db:"last_name"`
	Nationality     string  `json:"nationality" db:"nationality"`
	Gender          *string `json:"gender,omitempty" db:"gender"`
	School          string  `json:"school" db:"school"`
	PreviousClub    string  `json:"previous_club" db:"previous_club"`
	YearsOfTraining int     `json:"years_of_training" db:"years_of_training"`
	AgeGroup        string  `json:"age_group" db:"age_group"`
	Notes           string  `json:"notes" db:"notes"`

	Position string `json:"position" db:"position"`
	Goals    int    `json:"goals" db:"goals"`
	Assists  int    `json:"assists" db:"assists"`

	MotherName  *string `json:"mother_name,omitempty" db:"mother_name"`
	MotherPhone *string `json:"mother_phone,omitempty" db:"mother_phone"`
	MotherEmail *string `json:"mother_email,omitempty" db:"mother_email"`
	FatherName  *string `json:"father_name,omitempty" db:"father_name"`
	FatherPhone *string `json:"father_phone,omitempty" db:"father_phone"`
	FatherEmail *string `json:"father_email,omitempty" db:"father_email"`

	AmountOwed decimal.Decimal `json:"amount_owed" db:"amount_owed"`
	AmountPaid decimal.Decimal `json:"amount_paid" db:"amount_paid"`
	// Balance is never stored; it is recomputed from the amounts on every read.
	Balance decimal.Decimal `json:"balance" db:"-"`
}

// RecomputeBalance refreshes the derived balance from the stored amounts.
func (p *Player) RecomputeBalance() {
	p.Balance = p.AmountOwed.Sub(p.AmountPaid)
}
