package models

import "fmt"

// Lifecycle is the derived mastery classification of a card.
type Lifecycle int

const (
	LifecycleNew      Lifecycle = iota // never successfully reviewed
	LifecycleLearning                  // in the review cycle, interval under the mastery threshold
	LifecycleMastered                  // interval at or past the mastery threshold
)

var lifecycleNames = [...]string{
	LifecycleNew:      "new",
	LifecycleLearning: "learning",
	LifecycleMastered: "mastered",
}

func (l Lifecycle) String() string {
	if l >= LifecycleNew && l <= LifecycleMastered {
		return lifecycleNames[l]
	}
	return fmt.Sprintf("Lifecycle(%d)", int(l))
}
