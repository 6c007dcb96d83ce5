package models

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a closed set of skill tiers. Tiers carry no rank, only a name.
type Level string

const (
	LevelNoob       Level = "NOOB"
	LevelPro        Level = "PRO"
	LevelInvincible Level = "INVINCIBLE"
)

var ErrInvalidLevel = errors.New("invalid level")

// AllLevels returns every level in declaration order.
func AllLevels() []Level {
	return []Level{LevelNoob, LevelPro, LevelInvincible}
}

func (l Level) IsValid() bool {
	for _, level := range AllLevels() {
		if l == level {
			return true
		}
	}
	return false
}

func (l Level) String() string {
	return string(l)
}

// ParseLevel matches the input case-insensitively after trimming spaces.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !level.IsValid() {
		return "", fmt.Errorf("%w '%s'. Valid values are: %s", ErrInvalidLevel, s, strings.Join(levelNames(), ", "))
	}
	return level, nil
}

func levelNames() []string {
	names := make([]string, 0, len(AllLevels()))
	for _, level := range AllLevels() {
		names = append(names, string(level))
	}
	return names
}
