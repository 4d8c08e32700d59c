package model

import (
	"log/slog"
	"time"
)

// EventType identifies the type of event
type EventType string

const (
	EventPlayerCreated EventType = "player_created"
	EventActivityDone  EventType = "activity_done"
	EventAgedUp        EventType = "aged_up"
	EventBonusAwarded  EventType = "bonus_awarded"
)

// Event records something that happened to a player
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	PlayerID  PlayerID  `json:"player_id"`
	Payload   any       `json:"payload"` // Type-specific data
}

// PlayerCreatedPayload contains data for player created events
type PlayerCreatedPayload struct {
	Username string `json:"username"`
}

// ActivityDonePayload contains data for activity done events
type ActivityDonePayload struct {
	Activity  Activity `json:"activity"`
	TimeOfDay int      `json:"time_of_the_day"`
}

// AgedUpPayload contains data for aged up events
type AgedUpPayload struct {
	NewAge int      `json:"new_age"`
	Cause  Activity `json:"cause"`
}

// BonusAwardedPayload contains data for bonus awarded events
type BonusAwardedPayload struct {
	Skill Skill `json:"skill"`
}

// Log writes the event as a single info line
func (e Event) Log(logger *slog.Logger) {
	attrs := []any{slog.String("player_id", string(e.PlayerID))}

	var msg string
	switch p := e.Payload.(type) {
	case PlayerCreatedPayload:
		msg = "player created"
		attrs = append(attrs, slog.String("username", p.Username))
	case ActivityDonePayload:
		msg = "activity done"
		attrs = append(attrs,
			slog.String("activity", p.Activity.String()),
			slog.Int("time_of_day", p.TimeOfDay),
		)
	case AgedUpPayload:
		msg = "player aged up"
		attrs = append(attrs,
			slog.Int("age", p.NewAge),
			slog.String("cause", p.Cause.String()),
		)
	case BonusAwardedPayload:
		msg = "bonus awarded"
		attrs = append(attrs, slog.String("skill", p.Skill.String()))
	default:
		msg = string(e.Type)
	}

	logger.Info(msg, attrs...)
}
