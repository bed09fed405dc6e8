package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendRating(t *testing.T) {
	avg, err := AppendRating([]int{4, 2}, 5)
	assert.NoError(t, err)
	assert.InDelta(t, 3.6667, avg, 0.001)
}

func TestAppendRatingFirstReview(t *testing.T) {
	avg, err := AppendRating(nil, 4)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, avg)
}

func TestAppendRatingOutOfRange(t *testing.T) {
	_, err := AppendRating([]int{3}, 0)
	assert.ErrorIs(t, err, ErrRatingOutOfRange)

	_, err = AppendRating([]int{3}, 6)
	assert.ErrorIs(t, err, ErrRatingOutOfRange)
}

func TestAverageRatingExactRecompute(t *testing.T) {
	// mean is recomputed over the full list each time, so repeated
	// appends cannot drift
	ratings := []int{5, 5, 1, 3, 2, 4, 4}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	assert.Equal(t, float64(sum)/float64(len(ratings)), AverageRating(ratings))
	assert.Equal(t, 0.0, AverageRating(nil))
}
