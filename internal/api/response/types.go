package response

import (
	"fmt"
	"time"

	"github.com/mcoot/lifegame/internal/model"
	"github.com/mcoot/lifegame/internal/services/menu"
)

// StatusSuccess tags every successful body
const StatusSuccess = "SUCCESS"

// Envelope carries the status tag shared by every action response
type Envelope struct {
	Status string `json:"status"`
}

// OK is the envelope of a successful action
var OK = Envelope{Status: StatusSuccess}

// FormatTime renders an hour as HH:00. Hours past 23 are not wrapped.
func FormatTime(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// Question is a registration question
type Question struct {
	Name     string          `json:"name"`
	Question string          `json:"question"`
	Type     model.InputType `json:"type"`
}

// FormResponse lists the registration questions
type FormResponse struct {
	Envelope
	Questions []Question `json:"questions"`
}

// FormFromModel converts the question catalog
func FormFromModel(questions []model.ProfileQuestion) FormResponse {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = Question{Name: string(q.Field), Question: q.Question, Type: q.Type}
	}
	return FormResponse{Envelope: OK, Questions: out}
}

// Details is the greeting summary of a player
type Details struct {
	Envelope
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Time     string `json:"time"`
}

// DetailsFromModel converts a player to its greeting summary
func DetailsFromModel(p *model.Player) Details {
	return Details{
		Envelope: OK,
		PlayerID: string(p.ID),
		Name:     p.Profile.Name,
		Time:     FormatTime(p.TimeOfDay),
	}
}

// Event is something that happened to the player during the action
type Event struct {
	Type      model.EventType `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   any             `json:"payload"`
}

// EventsFromModel converts events. It never returns nil.
func EventsFromModel(events []model.Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = Event{Type: e.Type, Timestamp: e.Timestamp, Payload: e.Payload}
	}
	return out
}

// EntryResponse is returned by registration and login
type EntryResponse struct {
	Details
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Events       []Event   `json:"events,omitempty"`
}

// PlayerData is the full public state of a player. The password hash is never included.
type PlayerData struct {
	ID             string       `json:"id"`
	Username       string       `json:"username"`
	Name           string       `json:"name"`
	Age            int          `json:"age"`
	Height         int          `json:"height"`
	City           string       `json:"city"`
	Job            string       `json:"job"`
	TimeOfTheDay   int          `json:"time_of_the_day"`
	Skills         model.Skills `json:"skills"`
	CreatedAt      time.Time    `json:"created_at"`
	LastUpdateTime time.Time    `json:"last_update_time"`
}

// PlayerDataFromModel converts a model.Player
func PlayerDataFromModel(p *model.Player) PlayerData {
	return PlayerData{
		ID:             string(p.ID),
		Username:       p.Username,
		Name:           p.Profile.Name,
		Age:            p.Profile.Age,
		Height:         p.Profile.Height,
		City:           p.Profile.City,
		Job:            p.Profile.Job,
		TimeOfTheDay:   p.TimeOfDay,
		Skills:         p.Skills,
		CreatedAt:      p.CreatedAt,
		LastUpdateTime: p.UpdatedAt,
	}
}

// PlayerResponse wraps PlayerData
type PlayerResponse struct {
	Envelope
	PlayerData PlayerData `json:"playerData"`
}

// MenuResponse lists the options currently available
type MenuResponse struct {
	Envelope
	Options []menu.Option `json:"options"`
}

// ChoiceResponse is returned after an activity is applied
type ChoiceResponse struct {
	Envelope
	PlayerData PlayerData   `json:"playerData"`
	Time       string       `json:"time"`
	AgedUp     bool         `json:"aged_up"`
	BonusSkill *model.Skill `json:"bonus_skill"`
	Events     []Event      `json:"events"`
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status string `json:"status"`
}
