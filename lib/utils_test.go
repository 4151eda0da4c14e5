package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceContains(t *testing.T) {
	slice := []string{"a", "b", "c"}
	assert.True(t, SliceContains(slice, "b"))
	assert.False(t, SliceContains(slice, "d"))
	assert.False(t, SliceContains(nil, "a"))
}

func TestGetUniqueItems(t *testing.T) {
	items := []string{"a", "b", "a", "c", "b"}
	assert.Equal(t, []string{"a", "b", "c"}, GetUniqueItems(items))
	assert.Empty(t, GetUniqueItems(nil))
}
