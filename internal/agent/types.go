package agent

import (
	"fmt"
	"strings"
)

// Mood is the agent's behavior state. The set of moods is closed: only the
// constants below are valid, and every method switches over exactly them.
type Mood string

const (
	MoodHappy Mood = "happy"
	MoodSad   Mood = "sad"
)

// DefaultMood is the state of a newly constructed Agent.
const DefaultMood = MoodHappy

// Moods lists every valid mood in declaration order.
func Moods() []Mood { return []Mood{MoodHappy, MoodSad} }

// Valid reports whether m is a member of the closed mood set.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodSad:
		return true
	}
	return false
}

// Think returns the fixed thought associated with the mood.
func (m Mood) Think() string {
	switch m {
	case MoodHappy:
		return "I am happy 😃"
	case MoodSad:
		return "I am sad 😢"
	}
	return ""
}

func (m Mood) String() string { return string(m) }

// ParseMood converts user input (case-insensitive, surrounding space ignored)
// into a Mood.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", invalidArgument(fmt.Sprintf("unknown mood %q (want one of %v)", s, Moods()))
	}
	return m, nil
}
