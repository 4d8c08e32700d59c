package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

const (
	// WakeUpHour is the time of day a player starts at and wakes up at
	WakeUpHour = 8
)

// Profile holds the answers a player gave at registration
type Profile struct {
	Name   string
	Age    int
	Height int
	City   string
	Job    string
}

// Player is the full mutable aggregate for one participant
type Player struct {
	ID           PlayerID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	Profile      Profile
	TimeOfDay    int
	Skills       Skills
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	c := *p
	return &c
}

// Registration is a validated registration form, ready to become a Player
type Registration struct {
	Profile  Profile
	Username string
	Password string
}
