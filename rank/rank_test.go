package rank

import (
	"testing"

	"github.com/poiesic/scout/classify"
	"github.com/poiesic/scout/core"
	"github.com/stretchr/testify/assert"
)

func TestByMatch(t *testing.T) {
	match := classify.MatchNotePrefix + "Cardiologist"
	doctors := []core.Doctor{
		{ID: "a", Notes: classify.GenericNote},
		{ID: "b", Notes: match},
		{ID: "c", Notes: classify.GenericNote},
		{ID: "d", Notes: match},
		{ID: "e"},
		{ID: "f", Notes: match},
	}

	got := ByMatch(doctors)

	ids := make([]string, len(got))
	for i, d := range got {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"b", "d", "f", "a", "c", "e"}, ids)
	assert.Equal(t, "a", doctors[0].ID, "input must not be reordered")
}

func TestPartition(t *testing.T) {
	t.Run("all in one group keeps order", func(t *testing.T) {
		in := []int{5, 3, 9, 1}
		assert.Equal(t, in, Partition(in, func(int) bool { return true }))
		assert.Equal(t, in, Partition(in, func(int) bool { return false }))
	})

	t.Run("even first", func(t *testing.T) {
		in := []int{1, 2, 3, 4, 5, 6}
		assert.Equal(t, []int{2, 4, 6, 1, 3, 5}, Partition(in, func(n int) bool { return n%2 == 0 }))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Partition([]int(nil), func(int) bool { return true }))
	})
}
