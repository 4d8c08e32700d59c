// Package storagetest provides a behaviour suite every storage backend must pass
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/lifegame/internal/model"
	"github.com/mcoot/lifegame/internal/storage"
)

// Suite exercises the storage.Storage contract. Embed it and set NewStorage.
type Suite struct {
	suite.Suite
	NewStorage func() storage.Storage

	Storage storage.Storage
	Ctx     context.Context
}

func (s *Suite) SetupTest() {
	s.Storage = s.NewStorage()
	s.Ctx = context.Background()
}

func (s *Suite) TearDownTest() {
	if s.Storage != nil {
		_ = s.Storage.Close()
	}
}

// NewPlayer builds a fully-populated player for tests
func NewPlayer(id model.PlayerID, username string) *model.Player {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Player{
		ID:           id,
		Username:     username,
		PasswordHash: "hash-" + username,
		Profile: model.Profile{
			Name:   "Alice",
			Age:    25,
			Height: 170,
			City:   "Paris",
			Job:    "Baker",
		},
		TimeOfDay: model.WakeUpHour,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func (s *Suite) TestCreateAndGetPlayer() {
	player := NewPlayer("player-1", "alice")
	player.Skills.Raise(model.SkillMusic, 3)

	s.Require().NoError(s.Storage.CreatePlayer(s.Ctx, player))

	retrieved, err := s.Storage.GetPlayer(s.Ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Username, retrieved.Username)
	s.Equal(player.PasswordHash, retrieved.PasswordHash)
	s.Equal(player.Profile, retrieved.Profile)
	s.Equal(player.TimeOfDay, retrieved.TimeOfDay)
	s.Equal(player.Skills, retrieved.Skills)
	s.True(player.CreatedAt.Equal(retrieved.CreatedAt))
	s.True(player.UpdatedAt.Equal(retrieved.UpdatedAt))
}

func (s *Suite) TestGetPlayerNotFound() {
	_, err := s.Storage.GetPlayer(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestCreatePlayerRejectsDuplicateUsername() {
	s.Require().NoError(s.Storage.CreatePlayer(s.Ctx, NewPlayer("player-1", "alice")))

	err := s.Storage.CreatePlayer(s.Ctx, NewPlayer("player-2", "alice"))
	s.ErrorIs(err, model.ErrUsernameTaken)

	_, err = s.Storage.GetPlayer(s.Ctx, "player-2")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestGetPlayerByUsername() {
	s.Require().NoError(s.Storage.CreatePlayer(s.Ctx, NewPlayer("player-1", "alice")))

	retrieved, err := s.Storage.GetPlayerByUsername(s.Ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.ID)
}

func (s *Suite) TestGetPlayerByUsernameNotFound() {
	_, err := s.Storage.GetPlayerByUsername(s.Ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestSavePlayerOverwritesSnapshot() {
	player := NewPlayer("player-1", "alice")
	s.Require().NoError(s.Storage.CreatePlayer(s.Ctx, player))

	player.TimeOfDay = 14
	player.Profile.Age = 26
	player.Skills.Raise(model.SkillStudy, 2)
	player.UpdatedAt = player.UpdatedAt.Add(time.Hour)
	s.Require().NoError(s.Storage.SavePlayer(s.Ctx, player))

	retrieved, err := s.Storage.GetPlayer(s.Ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(14, retrieved.TimeOfDay)
	s.Equal(26, retrieved.Profile.Age)
	s.Equal(2, retrieved.Skills.Get(model.SkillStudy))
	s.True(player.UpdatedAt.Equal(retrieved.UpdatedAt))
}

func (s *Suite) TestSavePlayerNotFound() {
	err := s.Storage.SavePlayer(s.Ctx, NewPlayer("ghost", "ghost"))
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestReturnedPlayerIsACopy() {
	s.Require().NoError(s.Storage.CreatePlayer(s.Ctx, NewPlayer("player-1", "alice")))

	first, err := s.Storage.GetPlayer(s.Ctx, "player-1")
	s.Require().NoError(err)
	first.TimeOfDay = 99

	second, err := s.Storage.GetPlayer(s.Ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(model.WakeUpHour, second.TimeOfDay)
}

func (s *Suite) TestListPlayers() {
	first := NewPlayer("player-1", "alice")
	second := NewPlayer("player-2", "bob")
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	s.Require().NoError(s.Storage.CreatePlayer(s.Ctx, first))
	s.Require().NoError(s.Storage.CreatePlayer(s.Ctx, second))

	players, err := s.Storage.ListPlayers(s.Ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(model.PlayerID("player-1"), players[0].ID)
	s.Equal(model.PlayerID("player-2"), players[1].ID)
}

func (s *Suite) TestListPlayersEmpty() {
	players, err := s.Storage.ListPlayers(s.Ctx)
	s.Require().NoError(err)
	s.Empty(players)
}
