package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter writing to stdout
func NewOutput(format string) *Output {
	return &Output{format: format, w: os.Stdout, errW: os.Stderr}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	switch o.format {
	case OutputJSON:
		o.printJSON(o.w, data)
	case OutputYAML:
		o.printYAML(o.w, data)
	default:
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	body := map[string]string{"status": "FAILURE", "message": err.Error()}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		body["code"] = apiErr.Code
		body["message"] = apiErr.Message
		if apiErr.Field != "" {
			body["field"] = apiErr.Field
		}
	}

	switch o.format {
	case OutputJSON:
		o.printJSON(o.errW, body)
	case OutputYAML:
		o.printYAML(o.errW, body)
	default:
		_, _ = fmt.Fprintf(o.errW, "%s %s\n", errorStyle.Render("Error:"), err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	switch o.format {
	case OutputJSON:
		o.printJSON(o.w, map[string]string{"message": msg})
	case OutputYAML:
		o.printYAML(o.w, map[string]string{"message": msg})
	default:
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(w io.Writer, data any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printYAML(w io.Writer, data any) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	_ = enc.Encode(data)
	_ = enc.Close()
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Form:
		o.printForm(v)
	case Details:
		o.printDetails(v)
	case Entry:
		o.printEntry(v)
	case PlayerResult:
		o.printPlayerData(v.PlayerData)
	case Menu:
		o.printMenu(v)
	case ChoiceResult:
		o.printChoice(v)
	case StatusResult:
		o.field("Status", v.Status)
	default:
		o.printJSON(o.w, data)
	}
}

// Question is a registration question
type Question struct {
	Name     string `json:"name" yaml:"name"`
	Question string `json:"question" yaml:"question"`
	Type     string `json:"type" yaml:"type"`
}

// Form is the getFormForNewPlayer response
type Form struct {
	Status    string     `json:"status" yaml:"status"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Details is the greeting summary of a player
type Details struct {
	Status   string `json:"status" yaml:"status"`
	PlayerID string `json:"playerId" yaml:"playerId"`
	Name     string `json:"name" yaml:"name"`
	Time     string `json:"time" yaml:"time"`
}

// Entry is returned by registration and login
type Entry struct {
	Details      `yaml:",inline"`
	SessionToken string    `json:"session_token" yaml:"session_token"`
	ExpiresAt    time.Time `json:"expires_at" yaml:"expires_at"`
}

// PlayerData is the full public state of a player
type PlayerData struct {
	ID             string         `json:"id" yaml:"id"`
	Username       string         `json:"username" yaml:"username"`
	Name           string         `json:"name" yaml:"name"`
	Age            int            `json:"age" yaml:"age"`
	Height         int            `json:"height" yaml:"height"`
	City           string         `json:"city" yaml:"city"`
	Job            string         `json:"job" yaml:"job"`
	TimeOfTheDay   int            `json:"time_of_the_day" yaml:"time_of_the_day"`
	Skills         map[string]int `json:"skills" yaml:"skills"`
	CreatedAt      time.Time      `json:"created_at" yaml:"created_at"`
	LastUpdateTime time.Time      `json:"last_update_time" yaml:"last_update_time"`
}

// PlayerResult is the getPlayerData response
type PlayerResult struct {
	Status     string     `json:"status" yaml:"status"`
	PlayerData PlayerData `json:"playerData" yaml:"playerData"`
}

// MenuOption is one selectable activity
type MenuOption struct {
	Literal string `json:"literal" yaml:"literal"`
	Display string `json:"string" yaml:"string"`
}

// Menu is the getRelevantMenu response
type Menu struct {
	Status  string       `json:"status" yaml:"status"`
	Options []MenuOption `json:"options" yaml:"options"`
}

// Event is something that happened to the player during an action
type Event struct {
	Type      string         `json:"type" yaml:"type"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Payload   map[string]any `json:"payload" yaml:"payload"`
}

// ChoiceResult is the handleChoice response
type ChoiceResult struct {
	Status     string     `json:"status" yaml:"status"`
	PlayerData PlayerData `json:"playerData" yaml:"playerData"`
	Time       string     `json:"time" yaml:"time"`
	AgedUp     bool       `json:"aged_up" yaml:"aged_up"`
	BonusSkill *string    `json:"bonus_skill" yaml:"bonus_skill"`
	Events     []Event    `json:"events" yaml:"events"`
}

// StatusResult is a bare status body, as returned by validation and health checks
type StatusResult struct {
	Status string `json:"status" yaml:"status"`
}

func (o *Output) title(s string) {
	_, _ = fmt.Fprintln(o.w, titleStyle.Render(s))
}

func (o *Output) field(label string, value any) {
	_, _ = fmt.Fprintf(o.w, "%s %v\n", labelStyle.Render(label+":"), value)
}

func (o *Output) printForm(f Form) {
	o.title("Registration form")
	for i, q := range f.Questions {
		_, _ = fmt.Fprintf(o.w, "%d. %s %s\n", i+1, q.Question, labelStyle.Render(fmt.Sprintf("[%s, %s]", q.Name, q.Type)))
	}
}

func (o *Output) printDetails(d Details) {
	o.title(greeting(d.Name, d.Time))
	o.field("Player", d.PlayerID)
}

func (o *Output) printEntry(e Entry) {
	o.printDetails(e.Details)
	o.field("Token", e.SessionToken)
	o.field("Expires", e.ExpiresAt.Format(time.RFC3339))
}

func (o *Output) printPlayerData(p PlayerData) {
	o.title(fmt.Sprintf("%s (%s)", p.Name, p.Username))
	o.field("ID", p.ID)
	o.field("Age", p.Age)
	o.field("Height", fmt.Sprintf("%dcm", p.Height))
	o.field("City", p.City)
	o.field("Job", p.Job)
	o.field("Time", fmt.Sprintf("%02d:00", p.TimeOfTheDay))

	names := make([]string, 0, len(p.Skills))
	for name := range p.Skills {
		names = append(names, name)
	}
	sort.Strings(names)
	_, _ = fmt.Fprintln(o.w, labelStyle.Render("Skills:"))
	for _, name := range names {
		_, _ = fmt.Fprintf(o.w, "  %-15s %d\n", name, p.Skills[name])
	}
}

func (o *Output) printMenu(m Menu) {
	for i, opt := range m.Options {
		_, _ = fmt.Fprintf(o.w, "%d. %s %s\n", i+1, opt.Display, labelStyle.Render(opt.Literal))
	}
}

func (o *Output) printChoice(c ChoiceResult) {
	o.field("Time", c.Time)
	for _, e := range c.Events {
		switch e.Type {
		case "aged_up":
			o.title(fmt.Sprintf("Happy birthday! You are now %v.", e.Payload["new_age"]))
		case "bonus_awarded":
			o.title(fmt.Sprintf("Bonus point in %v!", e.Payload["skill"]))
		}
	}
}

func greeting(name, hour string) string {
	return fmt.Sprintf("Hello %s, it's %s o'clock. what would you like to do?", name, hour)
}
