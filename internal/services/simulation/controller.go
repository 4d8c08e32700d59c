// Package simulation is the entry point the action dispatcher calls into.
// It ties registration, login, menus and choices together.
package simulation

import (
	"context"
	"log/slog"

	"github.com/mcoot/lifegame/internal/model"
	"github.com/mcoot/lifegame/internal/repository"
	"github.com/mcoot/lifegame/internal/services/auth"
	"github.com/mcoot/lifegame/internal/services/choice"
	"github.com/mcoot/lifegame/internal/services/menu"
	"github.com/mcoot/lifegame/internal/services/validation"
)

// Entry is a player together with a freshly issued session
type Entry struct {
	Player  *model.Player
	Session *auth.Session
	Events  []model.Event
}

// Controller coordinates the simulation services for a single request
type Controller struct {
	repo      *repository.Repository
	validator *validation.Validator
	processor *choice.Processor
	auth      *auth.Service
	logger    *slog.Logger
}

// NewController creates a new simulation Controller
func NewController(
	repo *repository.Repository,
	validator *validation.Validator,
	processor *choice.Processor,
	authService *auth.Service,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		repo:      repo,
		validator: validator,
		processor: processor,
		auth:      authService,
		logger:    logger,
	}
}

// Form returns the registration questions
func (c *Controller) Form() []model.ProfileQuestion {
	return model.Questions()
}

// ValidateInput checks a single raw answer against an input type literal
func (c *Controller) ValidateInput(ctx context.Context, raw, inputType string) error {
	t, err := model.ParseInputType(inputType)
	if err != nil {
		return err
	}
	_, err = c.validator.ValidateField(ctx, raw, t)
	return err
}

// Register validates a registration form, creates the player and opens a session
func (c *Controller) Register(ctx context.Context, answers []model.Answer) (*Entry, error) {
	reg, err := c.validator.ValidateForm(ctx, answers)
	if err != nil {
		c.logger.Debug("registration rejected", slog.String("error", err.Error()))
		return nil, err
	}

	player, err := c.repo.Insert(ctx, reg)
	if err != nil {
		return nil, err
	}

	entry, err := c.enter(player)
	if err != nil {
		return nil, err
	}

	created := model.Event{
		Type:      model.EventPlayerCreated,
		Timestamp: player.CreatedAt,
		PlayerID:  player.ID,
		Payload:   model.PlayerCreatedPayload{Username: player.Username},
	}
	created.Log(c.logger)
	entry.Events = []model.Event{created}

	return entry, nil
}

// Login finds the player by credentials and opens a session
func (c *Controller) Login(ctx context.Context, username, password string) (*Entry, error) {
	player, err := c.repo.FindByCredentials(ctx, username, password)
	if err != nil {
		c.logger.Info("login failed",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return c.enter(player)
}

// Player returns the current state of a player
func (c *Controller) Player(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return c.repo.FindByID(ctx, id)
}

// Menu returns the options currently available to a player
func (c *Controller) Menu(ctx context.Context, id model.PlayerID) ([]menu.Option, error) {
	player, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return menu.Options(player), nil
}

// Choose applies an activity to a player
func (c *Controller) Choose(ctx context.Context, id model.PlayerID, literal string) (*choice.Result, error) {
	return c.processor.Apply(ctx, id, literal)
}

func (c *Controller) enter(player *model.Player) (*Entry, error) {
	session, err := c.auth.IssueSession(player)
	if err != nil {
		return nil, err
	}
	return &Entry{Player: player, Session: session}, nil
}
