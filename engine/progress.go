package engine

import (
	"errors"
	"math"
	"strings"
	"time"
)

// ErrEmptyTopic is returned when a completion event carries no topic id.
var ErrEmptyTopic = errors.New("topic id must not be empty")

// ProgressState is a user's completion state for one language.
type ProgressState struct {
	Language        string
	CompletedTopics []string
	ProgressPercent int
	LastAccessed    time.Time
}

// NormalizeLanguage lowercases a language key so "Python" and "python"
// address the same progress record.
func NormalizeLanguage(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}

// ApplyTopicCompletion produces the next progress state after a "topic
// completed" event. Passing nil for current creates a fresh record.
// Completing an already-completed topic leaves the set unchanged but
// still recomputes the percentage and refreshes LastAccessed.
func ApplyTopicCompletion(current *ProgressState, language, topicID string, totalTopics int, now time.Time) (ProgressState, error) {
	if strings.TrimSpace(topicID) == "" {
		return ProgressState{}, ErrEmptyTopic
	}

	next := ProgressState{
		Language:     NormalizeLanguage(language),
		LastAccessed: now,
	}
	if current != nil {
		next.CompletedTopics = append(next.CompletedTopics, current.CompletedTopics...)
	}
	if !containsTopic(next.CompletedTopics, topicID) {
		next.CompletedTopics = append(next.CompletedTopics, topicID)
	}
	next.ProgressPercent = Percent(len(next.CompletedTopics), totalTopics)

	return next, nil
}

// Percent computes round(100 * completed / total) clamped to [0,100].
// A total of zero yields zero rather than dividing by zero.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(completed) / float64(total)))
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p
}

func containsTopic(topics []string, topicID string) bool {
	for _, t := range topics {
		if t == topicID {
			return true
		}
	}
	return false
}
