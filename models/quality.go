package models

import (
	"encoding"
	"fmt"
	"strings"
)

// Quality is the learner's self-reported recall grade for one review.
type Quality int

const (
	Again Quality = iota // failed to recall
	Hard                 // recalled with difficulty
	Good                 // recalled with some effort
	Easy                 // recalled effortlessly
)

var qualityNames = [...]string{
	Again: "again",
	Hard:  "hard",
	Good:  "good",
	Easy:  "easy",
}

var (
	_ fmt.Stringer             = Quality(0)
	_ encoding.TextMarshaler   = Quality(0)
	_ encoding.TextUnmarshaler = (*Quality)(nil)
)

// IsValid reports whether q is one of the four defined grades.
func (q Quality) IsValid() bool {
	return q >= Again && q <= Easy
}

func (q Quality) String() string {
	if q.IsValid() {
		return qualityNames[q]
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// ParseQuality parses a grade name ("again", "hard", "good", "easy"),
// case-insensitively.
func ParseQuality(s string) (Quality, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for q, n := range qualityNames {
		if n == name {
			return Quality(q), nil
		}
	}
	return 0, fmt.Errorf("unknown quality grade %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (q Quality) MarshalText() ([]byte, error) {
	if !q.IsValid() {
		return nil, fmt.Errorf("invalid quality grade %d", int(q))
	}
	return []byte(qualityNames[q]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quality) UnmarshalText(text []byte) error {
	v, err := ParseQuality(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}
