package storage

//go:generate go run go.uber.org/mock/mockgen -destination=mock/mock_storage.go -package=storagemock github.com/mcoot/lifegame/internal/storage Storage

import (
	"context"

	"github.com/mcoot/lifegame/internal/model"
)

// Storage defines the interface for durable player persistence.
// Implementations store full player snapshots keyed by ID and keep a
// unique username index.
type Storage interface {
	// CreatePlayer stores a new player. Returns model.ErrUsernameTaken if the
	// username is already indexed.
	CreatePlayer(ctx context.Context, player *model.Player) error
	// SavePlayer overwrites the snapshot of an existing player
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error)
	// ListPlayers returns every stored player, used to hydrate the repository
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	Close() error
}
