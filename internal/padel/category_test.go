package padel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialRating(t *testing.T) {
	want := map[Category]int{
		Category8va: 1000,
		Category7ma: 1200,
		Category6ta: 1400,
		Category5ta: 1600,
		Category4ta: 1800,
		Category3ra: 2000,
		Category2da: 2200,
		Category1ra: 2400,
	}
	for category, rating := range want {
		got, err := InitialRating(category)
		require.NoError(t, err)
		assert.Equal(t, rating, got, "category %s", category)
	}

	_, err := InitialRating("9na")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" 4TA ")
	require.NoError(t, err)
	assert.Equal(t, Category4ta, c)

	_, err = ParseCategory("pro")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryForRating(t *testing.T) {
	assert.Equal(t, Category8va, CategoryForRating(850))
	assert.Equal(t, Category8va, CategoryForRating(1199))
	assert.Equal(t, Category7ma, CategoryForRating(1200))
	assert.Equal(t, Category4ta, CategoryForRating(1950))
	assert.Equal(t, Category1ra, CategoryForRating(2400))
	assert.Equal(t, Category1ra, CategoryForRating(3100))
}

func TestParseSets(t *testing.T) {
	sets, err := ParseSets("6-4, 3-6 10-8")
	require.NoError(t, err)
	assert.Equal(t, []SetScore{{Team1: 6, Team2: 4}, {Team1: 3, Team2: 6}, {Team1: 10, Team2: 8}}, sets)
	assert.Equal(t, "6-4 3-6 10-8", FormatSets(sets))

	_, err = ParseSets("")
	assert.Error(t, err)
	_, err = ParseSets("6:4")
	assert.Error(t, err)
	_, err = ParseSets("6-x")
	assert.Error(t, err)
}
