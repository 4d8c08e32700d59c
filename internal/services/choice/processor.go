package choice

import (
	"context"
	"log/slog"

	"github.com/mcoot/lifegame/internal/dependencies/clock"
	"github.com/mcoot/lifegame/internal/dependencies/random"
	"github.com/mcoot/lifegame/internal/model"
	"github.com/mcoot/lifegame/internal/repository"
)

// Result is a persisted transition
type Result struct {
	Player *model.Player
	Outcome
	Events []model.Event
}

// Processor applies choices to stored players
type Processor struct {
	repo   *repository.Repository
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
}

// NewProcessor creates a new Processor
func NewProcessor(repo *repository.Repository, clock clock.Clock, random random.Random, logger *slog.Logger) *Processor {
	return &Processor{
		repo:   repo,
		clock:  clock,
		random: random,
		logger: logger,
	}
}

// Apply resolves the activity literal and applies it to the player under the
// player's lock. The updated player is returned only once it is persisted.
func (p *Processor) Apply(ctx context.Context, id model.PlayerID, literal string) (*Result, error) {
	activity, err := model.ParseActivity(literal)
	if err != nil {
		return nil, err
	}

	var outcome Outcome
	player, err := p.repo.Update(ctx, id, func(player *model.Player) ([]model.Field, error) {
		outcome = Transition(player, activity, p.random)
		return outcome.Changed, nil
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Player:  player,
		Outcome: outcome,
		Events:  p.events(player, activity, outcome),
	}

	for _, e := range result.Events {
		e.Log(p.logger)
	}

	return result, nil
}

func (p *Processor) events(player *model.Player, activity model.Activity, outcome Outcome) []model.Event {
	now := p.clock.Now()
	events := []model.Event{{
		Type:      model.EventActivityDone,
		Timestamp: now,
		PlayerID:  player.ID,
		Payload:   model.ActivityDonePayload{Activity: activity, TimeOfDay: player.TimeOfDay},
	}}
	if outcome.AgedUp {
		events = append(events, model.Event{
			Type:      model.EventAgedUp,
			Timestamp: now,
			PlayerID:  player.ID,
			Payload:   model.AgedUpPayload{NewAge: player.Profile.Age, Cause: activity},
		})
	}
	if outcome.Bonus != nil {
		events = append(events, model.Event{
			Type:      model.EventBonusAwarded,
			Timestamp: now,
			PlayerID:  player.ID,
			Payload:   model.BonusAwardedPayload{Skill: *outcome.Bonus},
		})
	}
	return events
}
