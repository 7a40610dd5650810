package domain

import "time"

// Surface enumerates the playing surfaces accepted by the tournaments table.
type Surface string

const (
	SurfaceGrass Surface = "grass"
	SurfaceBeach Surface = "beach"
)

func (s Surface) Valid() bool {
	return s == SurfaceGrass || s == SurfaceBeach
}

type Player struct {
	Name    string    `json:"name" db:"name"`
	Phone   string    `json:"phone" db:"phone"`
	Email   *string   `json:"email,omitempty" db:"email"`
	Created time.Time `json:"created" db:"created"`
}

type Tournament struct {
	ID                   int64     `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name"`
	Location             string    `json:"location" db:"location"`
	Date                 time.Time `json:"date" db:"date"`
	Surface              Surface   `json:"surface" db:"surface"`
	RegistrationDeadline time.Time `json:"registration_deadline" db:"registration_deadline"`
	Created              time.Time `json:"created" db:"created"`
}

type TournamentPlayer struct {
	TournamentID int64      `json:"tournament_id" db:"tournament_id"`
	PlayerName   string     `json:"player_name" db:"player_name"`
	RegisteredAt time.Time  `json:"registered_at" db:"registered_at"`
	HasPaid      bool       `json:"has_paid" db:"has_paid"`
	PaymentDate  *time.Time `json:"payment_date,omitempty" db:"payment_date"`
}

type FederationPayment struct {
	ID          int64     `json:"id" db:"id"`
	PlayerName  string    `json:"player_name" db:"player_name"`
	PaymentDate time.Time `json:"payment_date" db:"payment_date"`
	Amount      float64   `json:"amount" db:"amount"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TournamentUpdate is a partial tournament update; nil fields keep their
// current value.
type TournamentUpdate struct {
	Name                 *string
	Location             *string
	Date                 *time.Time
	Surface              *Surface
	RegistrationDeadline *time.Time
}

func (u TournamentUpdate) Empty() bool {
	return u.Name == nil && u.Location == nil && u.Date == nil &&
		u.Surface == nil && u.RegistrationDeadline == nil
}

// Registration pairs a player with their payment state inside one tournament.
type Registration struct {
	Player      Player     `json:"player"`
	HasPaid     bool       `json:"has_paid"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

// PaidPlayer is a single paid-player search hit.
type PaidPlayer struct {
	Player      Player    `json:"player"`
	PaymentDate time.Time `json:"payment_date"`
	MatchScore  float64   `json:"match_score"`
}
