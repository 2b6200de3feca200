package ontology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/elreasoner/reasoner"
)

func TestParseELOSubClassOf(t *testing.T) {
	store := reasoner.NewStore()
	ont, err := ParseELO(strings.NewReader("A subClassOf B\n"), "test.elo", store)
	require.NoError(t, err)

	require.Len(t, ont.Axioms, 1)
	ax := ont.Axioms[0]
	assert.Equal(t, reasoner.AxiomGci, ax.Kind)
	assert.Equal(t, store.Name("A"), ax.LHS)
	assert.Equal(t, store.Name("B"), ax.RHS)
	assert.Equal(t, []string{"A"}, ont.ConceptNames)
}

func TestParseELOConjunctionAndExistential(t *testing.T) {
	store := reasoner.NewStore()
	const src = `
A subClassOf (B and C)
D subClassOf (r some E)
F equivalentTo (B and (r some E))
`
	ont, err := ParseELO(strings.NewReader(src), "test.elo", store)
	require.NoError(t, err)
	require.Len(t, ont.Axioms, 3)

	b := store.Name("B")
	c := store.Name("C")
	assert.Equal(t, store.Conj(b, c), ont.Axioms[0].RHS)

	e := store.Name("E")
	r := store.Role("r")
	assert.Equal(t, store.Exist(r, e), ont.Axioms[1].RHS)

	assert.Equal(t, reasoner.AxiomEquiv, ont.Axioms[2].Kind)
	assert.Equal(t, store.Conj(b, store.Exist(r, e)), ont.Axioms[2].RHS)
}

func TestParseELOThing(t *testing.T) {
	store := reasoner.NewStore()
	ont, err := ParseELO(strings.NewReader("A subClassOf Thing\n"), "test.elo", store)
	require.NoError(t, err)
	assert.Equal(t, reasoner.Top, ont.Axioms[0].RHS)
}

func TestParseELORejectsMalformedLine(t *testing.T) {
	store := reasoner.NewStore()
	_, err := ParseELO(strings.NewReader("A subClassOf\n"), "test.elo", store)
	assert.Error(t, err)
}

func TestParseELOSkipsBlankAndCommentLines(t *testing.T) {
	store := reasoner.NewStore()
	const src = "\n# comment\nA subClassOf B\n\n"
	ont, err := ParseELO(strings.NewReader(src), "test.elo", store)
	require.NoError(t, err)
	assert.Len(t, ont.Axioms, 1)
}
