// Package choice applies a chosen activity to a player.
//
// Transition is the pure rule set; Processor wraps it with the repository so
// every applied choice is persisted before it is reported.
package choice

import (
	"github.com/mcoot/lifegame/internal/dependencies/random"
	"github.com/mcoot/lifegame/internal/model"
)

const (
	// AgeUpEvery is how many sleeps, or school days, make a player one year older
	AgeUpEvery = 10
	// BonusEvery is how many sleeps earn a random bonus skill point
	BonusEvery = 7
)

// Outcome describes the derived effects of one transition
type Outcome struct {
	AgedUp  bool
	Bonus   *model.Skill
	Changed []model.Field
}

// Transition applies an activity to p in place. rnd picks the bonus skill.
func Transition(p *model.Player, a model.Activity, rnd random.Random) Outcome {
	def := a.Definition()
	out := Outcome{Changed: []model.Field{model.FieldSkills, model.FieldTimeOfDay}}

	p.Skills.Raise(def.Skill, 1)

	if a == model.ActivitySleep {
		p.TimeOfDay = model.WakeUpHour
	} else {
		p.TimeOfDay += def.TimeCost
	}

	if agesUp(p, a) {
		p.Profile.Age++
		out.AgedUp = true
		out.Changed = append(out.Changed, model.FieldAge)
	}

	// The wake-up check always holds straight after a sleep. It is kept as a
	// guard so the bonus stays tied to a fresh morning.
	if a == model.ActivitySleep &&
		p.Skills.Get(model.SkillWentToSleep)%BonusEvery == 0 &&
		p.TimeOfDay == model.WakeUpHour {
		skill := random.Pick(rnd, model.AllSkills())
		p.Skills.Raise(skill, 1)
		out.Bonus = &skill
	}

	return out
}

func agesUp(p *model.Player, a model.Activity) bool {
	switch a {
	case model.ActivitySleep:
		return p.Skills.Get(model.SkillWentToSleep)%AgeUpEvery == 0
	case model.ActivityGoToSchool:
		return p.Skills.Get(model.SkillWentToSchool)%AgeUpEvery == 0
	default:
		return false
	}
}
