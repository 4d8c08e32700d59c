package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/lifegame/internal/model"
)

func player(age, timeOfDay int) *model.Player {
	return &model.Player{Profile: model.Profile{Age: age}, TimeOfDay: timeOfDay}
}

func TestResolve(t *testing.T) {
	adult := []model.Activity{
		model.ActivityLearnCooking,
		model.ActivityLearnGuitar,
		model.ActivityPlayFootball,
		model.ActivityMeetFriends,
		model.ActivityReadABook,
	}

	tests := []struct {
		name      string
		age       int
		timeOfDay int
		want      []model.Activity
	}{
		{"toddler sleeps", 3, 8, []model.Activity{model.ActivitySleep}},
		{"toddler late at night still sleeps", 3, 25, []model.Activity{model.ActivitySleep}},
		{"child goes to school", 10, 8, []model.Activity{model.ActivityGoToSchool}},
		{"child at hour 20 goes to school", 10, 20, []model.Activity{model.ActivityGoToSchool}},
		{"child after 20 sleeps", 10, 21, []model.Activity{model.ActivitySleep}},
		{"age 5 is a child", 5, 8, []model.Activity{model.ActivityGoToSchool}},
		{"age 17 is a child", 17, 8, []model.Activity{model.ActivityGoToSchool}},
		{"age 18 is an adult", 18, 8, adult},
		{"adult in the morning", 25, 10, adult},
		{"adult at hour 20", 25, 20, adult},
		{"adult past midnight sleeps", 25, 24, []model.Activity{model.ActivitySleep}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(player(tt.age, tt.timeOfDay)))
		})
	}
}

func TestResolveReturnsFreshSlice(t *testing.T) {
	first := Resolve(player(25, 10))
	first[0] = model.ActivitySleep

	assert.Equal(t, model.ActivityLearnCooking, Resolve(player(25, 10))[0])
}

func TestOptions(t *testing.T) {
	options := Options(player(25, 10))

	assert.Equal(t, []Option{
		{Literal: "LEARN_COOKING", Display: "Learn cooking"},
		{Literal: "LEARN_GUITAR", Display: "Learn guitar"},
		{Literal: "PLAY_FOOTBALL", Display: "Play football"},
		{Literal: "MEET_FRIENDS", Display: "Meet friends"},
		{Literal: "READ_A_BOOK", Display: "Read a book"},
	}, options)
}
