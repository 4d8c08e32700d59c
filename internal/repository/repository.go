// Package repository owns the authoritative collection of players.
//
// Every read hands out a clone, every mutation goes through Update, and no
// mutation becomes visible until the durable store has accepted it.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/lifegame/internal/dependencies/clock"
	"github.com/mcoot/lifegame/internal/dependencies/hasher"
	"github.com/mcoot/lifegame/internal/dependencies/idgen"
	"github.com/mcoot/lifegame/internal/model"
	"github.com/mcoot/lifegame/internal/storage"
)

// Mutation changes a player in place and reports which fields it touched
type Mutation func(p *model.Player) ([]model.Field, error)

// Repository is the in-memory player collection backed by durable storage
type Repository struct {
	storage storage.Storage
	clock   clock.Clock
	ids     idgen.Generator
	hasher  hasher.Hasher
	logger  *slog.Logger

	mu         sync.RWMutex
	byID       map[model.PlayerID]*model.Player
	byUsername map[string]model.PlayerID

	locksMu sync.Mutex
	locks   map[model.PlayerID]*sync.Mutex
}

// New creates an empty Repository. Call Load to hydrate it from storage.
func New(
	storage storage.Storage,
	clock clock.Clock,
	ids idgen.Generator,
	hasher hasher.Hasher,
	logger *slog.Logger,
) *Repository {
	return &Repository{
		storage:    storage,
		clock:      clock,
		ids:        ids,
		hasher:     hasher,
		logger:     logger,
		byID:       make(map[model.PlayerID]*model.Player),
		byUsername: make(map[string]model.PlayerID),
		locks:      make(map[model.PlayerID]*sync.Mutex),
	}
}

// Load replaces the in-memory collection with the contents of durable storage
func (r *Repository) Load(ctx context.Context) error {
	players, err := r.storage.ListPlayers(ctx)
	if err != nil {
		return fmt.Errorf("loading players: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[model.PlayerID]*model.Player, len(players))
	r.byUsername = make(map[string]model.PlayerID, len(players))
	for _, p := range players {
		r.byID[p.ID] = p
		r.byUsername[p.Username] = p.ID
	}

	r.logger.Info("players loaded", slog.Int("count", len(players)))
	return nil
}

// FindByID returns a copy of the player with the given ID
func (r *Repository) FindByID(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return p.Clone(), nil
}

// FindByCredentials returns the player whose username and password match.
// An unknown username is ErrPlayerNotFound, a wrong password ErrIncorrectPassword.
func (r *Repository) FindByCredentials(ctx context.Context, username, password string) (*model.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	id, ok := r.byUsername[username]
	var p *model.Player
	if ok {
		p = r.byID[id].Clone()
	}
	r.mu.RUnlock()

	if !ok {
		return nil, model.ErrPlayerNotFound
	}

	if err := r.hasher.Compare(p.PasswordHash, password); err != nil {
		if errors.Is(err, hasher.ErrMismatch) {
			return nil, model.ErrIncorrectPassword
		}
		return nil, err
	}
	return p, nil
}

// UsernameTaken reports whether any player already uses the username
func (r *Repository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byUsername[username]
	return ok, nil
}

// Insert creates a new player from a validated registration and persists it
func (r *Repository) Insert(ctx context.Context, reg *model.Registration) (*model.Player, error) {
	hash, err := r.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := r.clock.Now()
	p := &model.Player{
		ID:           model.PlayerID(r.ids.Generate()),
		Username:     reg.Username,
		PasswordHash: hash,
		Profile:      reg.Profile,
		TimeOfDay:    model.WakeUpHour,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Held across the re-check and the durable write so two registrations
	// for the same username cannot both pass.
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[p.Username]; taken {
		return nil, &model.FieldError{Field: model.FieldUsername, Reason: "already taken", Err: model.ErrUsernameTaken}
	}

	if err := r.storage.CreatePlayer(ctx, p); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return nil, &model.FieldError{Field: model.FieldUsername, Reason: "already taken", Err: model.ErrUsernameTaken}
		}
		r.logger.Error("failed to create player",
			slog.String("player_id", string(p.ID)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", model.ErrPersistenceFailure, err)
	}

	r.byID[p.ID] = p
	r.byUsername[p.Username] = p.ID

	r.logger.Info("player created",
		slog.String("player_id", string(p.ID)),
		slog.String("username", p.Username),
	)
	return p.Clone(), nil
}

// Update runs fn against a copy of the player while holding that player's
// lock, persists the result and only then makes it visible.
func (r *Repository) Update(ctx context.Context, id model.PlayerID, fn Mutation) (*model.Player, error) {
	lock := r.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	working, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := fn(working)
	if err != nil {
		return nil, err
	}

	if err := r.Persist(ctx, working, changed...); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.byID[id] = working
	r.mu.Unlock()

	return working.Clone(), nil
}

// Persist writes the full snapshot of p to durable storage. The changed
// fields are only used for logging.
func (r *Repository) Persist(ctx context.Context, p *model.Player, changed ...model.Field) error {
	p.UpdatedAt = r.clock.Now()

	if err := r.storage.SavePlayer(ctx, p); err != nil {
		r.logger.Error("failed to persist player",
			slog.String("player_id", string(p.ID)),
			slog.Any("changed", changed),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %w", model.ErrPersistenceFailure, err)
	}

	r.logger.Debug("player persisted",
		slog.String("player_id", string(p.ID)),
		slog.Any("changed", changed),
	)
	return nil
}

// lockFor returns the mutex serialising mutations of one player
func (r *Repository) lockFor(id model.PlayerID) *sync.Mutex {
	r.locksMu.Lock()
	defer r.locksMu.Unlock()
	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}
	return lock
}
