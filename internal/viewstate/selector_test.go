package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelector(t *testing.T) {
	s := NewSelector("weekly", "monthly", "allTime")
	assert.Equal(t, "weekly", s.Active())

	assert.True(t, s.Select("monthly"))
	assert.False(t, s.Select("monthly"), "re-selecting the active value is a no-op")
	assert.Equal(t, "monthly", s.Active())

	assert.True(t, s.Select("yearly"))
	assert.Equal(t, "weekly", s.Active(), "unknown values fall back to the first option")
	assert.False(t, s.Select("yearly"))
}

func TestSelectorOptionsAreCopied(t *testing.T) {
	s := NewSelector("a", "b")
	opts := s.Options()
	opts[0] = "z"
	assert.Equal(t, []string{"a", "b"}, s.Options())
}

func TestSelectorPanicsWithoutOptions(t *testing.T) {
	assert.Panics(t, func() { NewSelector() })
}
