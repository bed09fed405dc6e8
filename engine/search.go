package engine

import (
	"sort"
	"strings"
)

// Document is the searchable projection of a content item.
type Document struct {
	ID          uint
	Title       string
	Description string
	Tags        []string
}

// Match pairs a document index with its relevance score.
type Match struct {
	Index int
	Score int
}

// Weights per field. Title hits count most, then tags, then description.
const (
	titleWeight       = 3
	tagWeight         = 2
	descriptionWeight = 1
)

// Rank scores docs against a free-text query and returns matches sorted
// by descending score. Documents that match no query token are dropped.
// An empty query matches everything with score zero, preserving the
// input order.
func Rank(query string, docs []Document) []Match {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(query)))

	matches := make([]Match, 0, len(docs))
	for i, doc := range docs {
		if len(tokens) == 0 {
			matches = append(matches, Match{Index: i})
			continue
		}
		score := scoreDocument(tokens, doc)
		if score > 0 {
			matches = append(matches, Match{Index: i, Score: score})
		}
	}

	// Stable sort keeps the store's ordering for equal scores
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})

	return matches
}

func scoreDocument(tokens []string, doc Document) int {
	title := strings.ToLower(doc.Title)
	description := strings.ToLower(doc.Description)

	score := 0
	for _, token := range tokens {
		if strings.Contains(title, token) {
			score += titleWeight
		}
		for _, tag := range doc.Tags {
			if strings.Contains(strings.ToLower(tag), token) {
				score += tagWeight
				break
			}
		}
		if strings.Contains(description, token) {
			score += descriptionWeight
		}
	}
	return score
}
