// ABOUTME: Deterministic contact temperature scoring
// ABOUTME: Pure function over the activity history with a fixed weight table
package models

// Weight per activity type. Tasks are planning artifacts and carry no heat.
var activityWeights = map[string]int{
	ActivityProposal: 20,
	ActivityMeeting:  15,
	ActivityCall:     10,
	ActivityEmail:    5,
	ActivityNote:     2,
	ActivityTask:     0,
}

// Label thresholds.
const (
	hotThreshold  = 50
	warmThreshold = 20
)

// Temperature labels.
const (
	LabelHot  = "Hot"
	LabelWarm = "Warm"
	LabelCold = "Cold"
)

// CalculateScore sums the weight of every activity ever logged on the
// contact. No decay, no cap: the score only grows as the history grows.
// A contact with no activities scores zero.
func CalculateScore(c *Contact) int {
	score := 0
	for _, a := range c.Activities {
		score += activityWeights[a.Type]
	}
	return score
}

// ScoreLabel maps a score to its qualitative temperature.
func ScoreLabel(score int) string {
	switch {
	case score >= hotThreshold:
		return LabelHot
	case score >= warmThreshold:
		return LabelWarm
	}
	return LabelCold
}

// Rescore returns a copy of the contact with the derived score refreshed.
// The stored score is only ever a cache of CalculateScore; callers must never
// trust an externally supplied value.
func Rescore(c Contact) Contact {
	c.Score = CalculateScore(&c)
	return c
}
