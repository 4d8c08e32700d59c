package model

import (
	"encoding/json"
	"fmt"
)

// Skill identifies one of the fixed skill counters a player accumulates
type Skill uint8

const (
	SkillStudy Skill = iota
	SkillMusic
	SkillSports
	SkillCooking
	SkillSocial
	SkillWentToSchool
	SkillWentToSleep

	// SkillCount is the number of skills every player carries
	SkillCount = int(SkillWentToSleep) + 1
)

var skillNames = [SkillCount]string{
	SkillStudy:        "study_level",
	SkillMusic:        "music_level",
	SkillSports:       "sports_level",
	SkillCooking:      "cooking_level",
	SkillSocial:       "social_level",
	SkillWentToSchool: "went_to_school",
	SkillWentToSleep:  "went_to_sleep",
}

// AllSkills returns every skill in catalog order
func AllSkills() []Skill {
	skills := make([]Skill, SkillCount)
	for i := range skills {
		skills[i] = Skill(i)
	}
	return skills
}

// ParseSkill resolves a skill by its literal name
func ParseSkill(name string) (Skill, bool) {
	for i, n := range skillNames {
		if n == name {
			return Skill(i), true
		}
	}
	return 0, false
}

func (s Skill) String() string {
	if int(s) >= SkillCount {
		return fmt.Sprintf("Skill(%d)", uint8(s))
	}
	return skillNames[s]
}

// MarshalText encodes the skill as its literal name
func (s Skill) MarshalText() ([]byte, error) {
	if int(s) >= SkillCount {
		return nil, fmt.Errorf("unknown skill %d", uint8(s))
	}
	return []byte(skillNames[s]), nil
}

// UnmarshalText decodes a skill from its literal name
func (s *Skill) UnmarshalText(text []byte) error {
	skill, ok := ParseSkill(string(text))
	if !ok {
		return fmt.Errorf("unknown skill %q", string(text))
	}
	*s = skill
	return nil
}

// Skills holds one counter per skill. The array shape keeps the key set closed.
type Skills [SkillCount]int

// Get returns the counter for a skill
func (s *Skills) Get(skill Skill) int {
	return s[skill]
}

// Raise increments a skill counter
func (s *Skills) Raise(skill Skill, by int) {
	s[skill] += by
}

// Map returns the counters keyed by skill name
func (s Skills) Map() map[string]int {
	m := make(map[string]int, SkillCount)
	for i, v := range s {
		m[skillNames[i]] = v
	}
	return m
}

// MarshalJSON encodes the counters as an object keyed by skill name
func (s Skills) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// UnmarshalJSON decodes counters from an object keyed by skill name
func (s *Skills) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out Skills
	for name, v := range m {
		skill, ok := ParseSkill(name)
		if !ok {
			return fmt.Errorf("unknown skill %q", name)
		}
		out[skill] = v
	}
	*s = out
	return nil
}
