package reasoner_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/elreasoner/ontology"
	"github.com/nodeadmin/elreasoner/reasoner"
)

// TestPancakeRegression exercises a small pancake-style ontology where
// DutchPancake is a PancakeWithTopping (an existential over a topping)
// and also a kind of Pancake; its subsumer set must contain Pancake and
// ⊤. This is the canonical smoke test against a known ontology input,
// the classic Protege "dutch pancakes" tutorial ontology.
func TestPancakeRegression(t *testing.T) {
	const elo = `
Pancake subClassOf Thing
PancakeWithTopping subClassOf (Pancake and (hasTopping some Topping))
DutchPancake subClassOf PancakeWithTopping
DutchPancake subClassOf Pancake
`
	store := reasoner.NewStore()
	ont, err := ontology.ParseELO(strings.NewReader(elo), "test.elo", store)
	require.NoError(t, err)

	tbox := reasoner.Normalize(reasoner.NewTBox(ont.Axioms))
	universe := reasoner.NewUniverse(store, tbox, ont.ConceptNames)

	h := reasoner.NewHierarchy(store, tbox, universe, zerolog.Nop())
	dutch, err := universe.Resolve("DutchPancake")
	require.NoError(t, err)

	subs, err := h.GetSubsumers(dutch)
	require.NoError(t, err)

	pancake, err := universe.Resolve("Pancake")
	require.NoError(t, err)

	assert.True(t, subs[pancake], "DutchPancake must be subsumed by Pancake")
	assert.True(t, subs[reasoner.Top], "DutchPancake must be subsumed by ⊤")
}
