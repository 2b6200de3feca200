package reasoner

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownConceptRejected(t *testing.T) {
	store := NewStore()
	tbox := Normalize(NewTBox(nil))
	universe := NewUniverse(store, tbox, []string{"A"})

	_, err := universe.Resolve("Ghost")
	require.Error(t, err)
	var target *UnknownConceptError
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, "Ghost", target.Name)
}

func TestIsSubsumedByReusesLabelsForHierarchy(t *testing.T) {
	store := NewStore()
	a := store.Name("A")
	b := store.Name("B")
	c := store.Name("C")
	tbox := Normalize(NewTBox([]Axiom{store.Gci(a, b), store.Gci(b, c)}))
	universe := NewUniverse(store, tbox, []string{"A", "B", "C"})

	res, err := IsSubsumedBy(store, tbox, universe, a, c, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, res.Holds)
	assert.True(t, res.Labels[a])
	assert.True(t, res.Labels[b])
	assert.True(t, res.Labels[c])
	assert.True(t, res.Labels[Top])
}
