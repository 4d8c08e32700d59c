package model

import "fmt"

// Activity is one of the fixed actions a player may choose from the menu
type Activity uint8

const (
	ActivitySleep Activity = iota
	ActivityGoToSchool
	ActivityLearnCooking
	ActivityLearnGuitar
	ActivityPlayFootball
	ActivityMeetFriends
	ActivityReadABook

	activityCount = int(ActivityReadABook) + 1
)

// ActivityDefinition is the immutable catalog entry for an activity
type ActivityDefinition struct {
	Literal string
	Display string
	Skill   Skill
	// TimeCost is added to the time of day. SLEEP resets the clock instead.
	TimeCost int
}

var activityCatalog = [activityCount]ActivityDefinition{
	ActivitySleep:        {Literal: "SLEEP", Display: "Sleep", Skill: SkillWentToSleep, TimeCost: 1},
	ActivityGoToSchool:   {Literal: "GO_TO_SCHOOL", Display: "Go to school", Skill: SkillWentToSchool, TimeCost: 8},
	ActivityLearnCooking: {Literal: "LEARN_COOKING", Display: "Learn cooking", Skill: SkillCooking, TimeCost: 2},
	ActivityLearnGuitar:  {Literal: "LEARN_GUITAR", Display: "Learn guitar", Skill: SkillMusic, TimeCost: 2},
	ActivityPlayFootball: {Literal: "PLAY_FOOTBALL", Display: "Play football", Skill: SkillSports, TimeCost: 2},
	ActivityMeetFriends:  {Literal: "MEET_FRIENDS", Display: "Meet friends", Skill: SkillSocial, TimeCost: 3},
	ActivityReadABook:    {Literal: "READ_A_BOOK", Display: "Read a book", Skill: SkillStudy, TimeCost: 4},
}

// AdultActivities are offered to grown-up players, in menu order
var AdultActivities = []Activity{
	ActivityLearnCooking,
	ActivityLearnGuitar,
	ActivityPlayFootball,
	ActivityMeetFriends,
	ActivityReadABook,
}

// AllActivities returns every activity in catalog order
func AllActivities() []Activity {
	activities := make([]Activity, activityCount)
	for i := range activities {
		activities[i] = Activity(i)
	}
	return activities
}

// ParseActivity resolves an activity literal such as "READ_A_BOOK"
func ParseActivity(literal string) (Activity, error) {
	for i, def := range activityCatalog {
		if def.Literal == literal {
			return Activity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownActivity, literal)
}

// Definition returns the catalog entry for the activity
func (a Activity) Definition() ActivityDefinition {
	return activityCatalog[a]
}

func (a Activity) String() string {
	if int(a) >= activityCount {
		return fmt.Sprintf("Activity(%d)", uint8(a))
	}
	return activityCatalog[a].Literal
}

// MarshalText encodes the activity as its literal
func (a Activity) MarshalText() ([]byte, error) {
	if int(a) >= activityCount {
		return nil, fmt.Errorf("unknown activity %d", uint8(a))
	}
	return []byte(activityCatalog[a].Literal), nil
}

// UnmarshalText decodes an activity from its literal
func (a *Activity) UnmarshalText(text []byte) error {
	activity, err := ParseActivity(string(text))
	if err != nil {
		return err
	}
	*a = activity
	return nil
}
