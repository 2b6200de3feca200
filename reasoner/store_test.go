package reasoner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashConsing(t *testing.T) {
	store := NewStore()

	a1 := store.Name("A")
	a2 := store.Name("A")
	assert.Equal(t, a1, a2, "structurally equal names must share one id")

	b := store.Name("B")
	conj1 := store.Conj(a1, b)
	conj2 := store.Conj(a2, b)
	assert.Equal(t, conj1, conj2)

	conjSwapped := store.Conj(b, a1)
	assert.NotEqual(t, conj1, conjSwapped, "conjunction is not canonicalized by operand order")

	r1 := store.Role("r")
	r2 := store.Role("r")
	assert.Equal(t, r1, r2)

	e1 := store.Exist(r1, a1)
	e2 := store.Exist(r2, a2)
	assert.Equal(t, e1, e2)
}

func TestTopIsAlwaysIDZero(t *testing.T) {
	store := NewStore()
	assert.Equal(t, Top, store.TopID())
	assert.Equal(t, KindTop, store.Kind(Top))
}
