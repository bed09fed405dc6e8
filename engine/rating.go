package engine

import "errors"

// ErrRatingOutOfRange is returned for ratings outside 1..5.
var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

// ValidateRating checks a review rating against the allowed 1..5 range.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrRatingOutOfRange
	}
	return nil
}

// AverageRating returns the exact mean over the full rating list,
// recomputed from scratch rather than incrementally adjusted. An empty
// list averages to zero.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// AppendRating validates the new rating and returns the mean of the
// existing ratings with the new one included.
func AppendRating(existing []int, rating int) (float64, error) {
	if err := ValidateRating(rating); err != nil {
		return 0, err
	}
	sum := rating
	for _, r := range existing {
		sum += r
	}
	return float64(sum) / float64(len(existing)+1), nil
}
