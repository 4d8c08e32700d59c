package redis

import (
	"fmt"

	"github.com/mcoot/lifegame/internal/model"
)

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player snapshot
func (s *Storage) playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", s.cfg.KeyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func (s *Storage) usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", s.cfg.KeyPrefix, username)
}

// playersIndexKey returns the Redis key for the SET of all player IDs
func (s *Storage) playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", s.cfg.KeyPrefix)
}
