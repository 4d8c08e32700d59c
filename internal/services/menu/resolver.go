// Package menu decides which activities a player may choose next
package menu

import "github.com/mcoot/lifegame/internal/model"

const (
	// BedtimeHour is the last hour at which daytime activities are offered
	BedtimeHour = 20
	// BedtimeAge is the age below which a player can only sleep
	BedtimeAge = 5
	// AdultAge is the age from which adult activities are offered
	AdultAge = 18
)

// Option is a menu entry as shown to a player
type Option struct {
	Literal string `json:"literal"`
	Display string `json:"string"`
}

// Resolve returns the activities available to the player, in menu order.
// The first matching rule wins and the result is never empty.
func Resolve(p *model.Player) []model.Activity {
	switch {
	case p.TimeOfDay > BedtimeHour || p.Profile.Age < BedtimeAge:
		return []model.Activity{model.ActivitySleep}
	case p.Profile.Age < AdultAge:
		return []model.Activity{model.ActivityGoToSchool}
	default:
		adult := make([]model.Activity, len(model.AdultActivities))
		copy(adult, model.AdultActivities)
		return adult
	}
}

// Options resolves the menu and pairs each activity with its display string
func Options(p *model.Player) []Option {
	activities := Resolve(p)
	options := make([]Option, len(activities))
	for i, a := range activities {
		def := a.Definition()
		options[i] = Option{Literal: def.Literal, Display: def.Display}
	}
	return options
}
