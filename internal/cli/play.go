package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// Menu entries that are not activities
const (
	choiceDetails = "*"
	choiceQuit    = "#"
)

var errQuit = errors.New("quit")

// option is one entry of a selection prompt
type option struct {
	Label string
	Value string
}

// prompter asks the user questions during an interactive session
type prompter interface {
	Select(title string, options []option) (string, error)
	Input(title string, secret bool) (string, error)
}

type huhPrompter struct{}

func (huhPrompter) Select(title string, options []option) (string, error) {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}

	var choice string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title(title).Options(opts...).Value(&choice),
		),
	).Run()
	return choice, err
}

func (huhPrompter) Input(title string, secret bool) (string, error) {
	var value string
	input := huh.NewInput().Title(title).Value(&value)
	if secret {
		input = input.EchoMode(huh.EchoModePassword)
	}

	err := huh.NewForm(huh.NewGroup(input)).Run()
	return value, err
}

// session drives one interactive play loop
type session struct {
	client *Client
	cfg    *Config
	out    *Output
	prompt prompter
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &session{
				client: client,
				cfg:    cfg,
				out:    NewOutput(OutputText),
				prompt: huhPrompter{},
			}
			err := s.run()
			if errors.Is(err, errQuit) || errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		},
	}
}

func (s *session) run() error {
	details, err := s.resume()
	if err != nil {
		return err
	}
	if details == nil {
		if details, err = s.enter(); err != nil {
			return err
		}
	}

	for {
		if details, err = s.turn(details); err != nil {
			return err
		}
	}
}

// resume picks up a saved session. It returns nil details when there is none.
func (s *session) resume() (*Details, error) {
	if s.cfg.Token == "" {
		return nil, nil
	}

	var details Details
	err := s.client.Query("getBasicDetailsForLogin", &details)
	if err == nil {
		return &details, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusNotFound) {
		s.client.SetToken("")
		return nil, nil
	}
	return nil, err
}

func (s *session) enter() (*Details, error) {
	for {
		choice, err := s.prompt.Select("Hello! What would you like to do?", []option{
			{Label: "Login", Value: "login"},
			{Label: "Register", Value: "register"},
			{Label: "Quit", Value: choiceQuit},
		})
		if err != nil {
			return nil, err
		}

		var entry *Entry
		switch choice {
		case "login":
			entry, err = s.login()
		case "register":
			entry, err = s.register()
		default:
			return nil, errQuit
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			s.out.PrintError(err)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.client.SetToken(entry.SessionToken)
		if err := s.cfg.SaveToken(entry.SessionToken); err != nil {
			return nil, fmt.Errorf("failed to save token: %w", err)
		}
		return &entry.Details, nil
	}
}

func (s *session) login() (*Entry, error) {
	user, err := s.prompt.Input("Username", false)
	if err != nil {
		return nil, err
	}
	pass, err := s.prompt.Input("Password", true)
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := s.client.Invoke("login", map[string]string{"username": user, "password": pass}, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// register asks every question of the server's form, checking each answer as it is given
func (s *session) register() (*Entry, error) {
	var form Form
	if err := s.client.Query("getFormForNewPlayer", &form); err != nil {
		return nil, err
	}

	answers := make(map[string]string, len(form.Questions))
	for _, q := range form.Questions {
		value, err := s.ask(q)
		if err != nil {
			return nil, err
		}
		answers[q.Name] = value
	}

	var entry Entry
	if err := s.client.Invoke("createNewPlayer", answers, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ask repeats a question until the server accepts the answer
func (s *session) ask(q Question) (string, error) {
	for {
		value, err := s.prompt.Input(q.Question, q.Type == "PASSWORD")
		if err != nil {
			return "", err
		}

		err = s.client.Invoke("validateSingleInput", map[string]string{
			"givenInput": value,
			"type":       q.Type,
		}, nil)
		if err == nil {
			return value, nil
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			return "", err
		}
		s.out.PrintError(err)
	}
}

// turn shows the menu once and applies the selection
func (s *session) turn(details *Details) (*Details, error) {
	var menu Menu
	if err := s.client.Query("getRelevantMenu", &menu); err != nil {
		return nil, err
	}

	options := make([]option, 0, len(menu.Options)+2)
	for _, o := range menu.Options {
		options = append(options, option{Label: o.Display, Value: o.Literal})
	}
	options = append(options,
		option{Label: "Show player details", Value: choiceDetails},
		option{Label: "Quit", Value: choiceQuit},
	)

	choice, err := s.prompt.Select(greeting(details.Name, details.Time), options)
	if err != nil {
		return nil, err
	}

	switch choice {
	case choiceQuit:
		return nil, errQuit
	case choiceDetails:
		var player PlayerResult
		if err := s.client.Query("getPlayerData", &player); err != nil {
			return nil, err
		}
		s.out.Print(player)
		return details, nil
	}

	var result ChoiceResult
	if err := s.client.Invoke("handleChoice", map[string]string{"choice": choice}, &result); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			s.out.PrintError(err)
			return details, nil
		}
		return nil, err
	}
	s.out.Print(result)

	next := *details
	next.Time = result.Time
	return &next, nil
}
