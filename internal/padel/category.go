package padel

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a discrete skill tier, 8va lowest to 1ra highest.
type Category string

const (
	Category8va Category = "8va"
	Category7ma Category = "7ma"
	Category6ta Category = "6ta"
	Category5ta Category = "5ta"
	Category4ta Category = "4ta"
	Category3ra Category = "3ra"
	Category2da Category = "2da"
	Category1ra Category = "1ra"
)

var ErrUnknownCategory = errors.New("unknown category")

// Categories lists every tier from lowest to highest.
var Categories = []Category{
	Category8va,
	Category7ma,
	Category6ta,
	Category5ta,
	Category4ta,
	Category3ra,
	Category2da,
	Category1ra,
}

var initialRatings = map[Category]int{
	Category8va: 1000,
	Category7ma: 1200,
	Category6ta: 1400,
	Category5ta: 1600,
	Category4ta: 1800,
	Category3ra: 2000,
	Category2da: 2200,
	Category1ra: 2400,
}

// InitialRating returns the rating a new player in the category starts with.
func InitialRating(c Category) (int, error) {
	rating, ok := initialRatings[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return rating, nil
}

// ParseCategory accepts a category name regardless of case and surrounding spaces.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := initialRatings[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// CategoryForRating returns the highest category whose initial rating does not
// exceed rating. Ratings below the lowest tier map to 8va.
func CategoryForRating(rating int) Category {
	result := Categories[0]
	for _, c := range Categories {
		if initialRatings[c] <= rating {
			result = c
		}
	}
	return result
}
