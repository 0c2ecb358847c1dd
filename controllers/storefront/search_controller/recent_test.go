package search_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushRecentPrepends(t *testing.T) {
	list := pushRecent([]string{"saree", "kurti"}, "lehenga")
	assert.Equal(t, []string{"lehenga", "saree", "kurti"}, list)
}

func TestPushRecentDeduplicatesCaseInsensitive(t *testing.T) {
	list := pushRecent([]string{"Saree", "kurti"}, "saree")
	assert.Equal(t, []string{"saree", "kurti"}, list)
}

func TestPushRecentCapsAtFive(t *testing.T) {
	list := []string{"a", "b", "c", "d", "e"}
	list = pushRecent(list, "f")
	assert.Equal(t, []string{"f", "a", "b", "c", "d"}, list)
}

func TestPushRecentBlankIsNoop(t *testing.T) {
	list := []string{"saree"}
	assert.Equal(t, list, pushRecent(list, ""))
	assert.Equal(t, list, pushRecent(list, "   "))
}

func TestPushRecentTrimsInput(t *testing.T) {
	list := pushRecent(nil, "  cotton saree  ")
	assert.Equal(t, []string{"cotton saree"}, list)
}

func TestRemoveRecent(t *testing.T) {
	list := removeRecent([]string{"saree", "kurti", "dhoti"}, "KURTI")
	assert.Equal(t, []string{"saree", "dhoti"}, list)

	// Removing something absent leaves the list alone
	list = removeRecent(list, "lehenga")
	assert.Equal(t, []string{"saree", "dhoti"}, list)
}
