package reasoner

import "github.com/rs/zerolog"

// Individual is a model element: the node created to witness a concept,
// either the query seed or an ∃-rule 1 witness. Two individuals are
// equal iff their initial concepts are equal — this is the small-model
// property that bounds the fixed point.
type Individual struct {
	InitialConcept ConceptID
	Labels         map[ConceptID]bool
	Successors     map[RoleID]map[ConceptID]bool // role -> set of successor initial-concepts
}

func newIndividual(initial ConceptID) *Individual {
	return &Individual{
		InitialConcept: initial,
		Labels:         map[ConceptID]bool{initial: true, Top: true},
		Successors:     make(map[RoleID]map[ConceptID]bool),
	}
}

// Model builds the finite interpretation: exhaustive application of the
// six EL rules, restricted to the input-concept set S, starting from
// one seeded individual.
type Model struct {
	store *Store
	tbox  *TBox
	s     map[ConceptID]bool

	gciByLHS map[ConceptID][]ConceptID // index over the normalized GCIs, triggers the ⊑-rule

	individuals map[ConceptID]*Individual // live set, keyed by initial concept
	seed        ConceptID
	seeded      bool

	log zerolog.Logger
}

// NewModel allocates a completion model over the frozen input-concept
// set S and the (already normalized) GCIs of tbox.
func NewModel(store *Store, tbox *TBox, s map[ConceptID]bool) *Model {
	idx := make(map[ConceptID][]ConceptID, len(s))
	for _, gci := range tbox.Gcis() {
		idx[gci.LHS] = append(idx[gci.LHS], gci.RHS)
	}
	return &Model{
		store:       store,
		tbox:        tbox,
		s:           s,
		gciByLHS:    idx,
		individuals: make(map[ConceptID]*Individual, 16),
		log:         zerolog.Nop(),
	}
}

// WithLogger attaches a diagnostic sink; nil-safe by default (zerolog.Nop).
func (m *Model) WithLogger(l zerolog.Logger) *Model {
	m.log = l
	return m
}

// Seed creates the initial individual d₀ with initial_concept = a and
// labels = {a, ⊤}.
func (m *Model) Seed(a ConceptID) {
	d0 := newIndividual(a)
	m.individuals = map[ConceptID]*Individual{a: d0}
	m.seed = a
	m.seeded = true
}

// Initial returns d₀, the seeded individual.
func (m *Model) Initial() *Individual {
	return m.individuals[m.seed]
}

// in reports whether a concept belongs to the frozen input set S.
func (m *Model) in(c ConceptID) bool { return m.s[c] }

// findOrStage returns the individual with the given initial concept,
// checking both the live set and the current sweep's staging buffer so
// that two ∃-rule 1 firings for the same concept within one sweep share
// a single witness.
func findOrStage(live, staged map[ConceptID]*Individual, concept ConceptID) (*Individual, bool) {
	if ind, ok := live[concept]; ok {
		return ind, false
	}
	if ind, ok := staged[concept]; ok {
		return ind, false
	}
	ind := newIndividual(concept)
	staged[concept] = ind
	return ind, true
}

// Saturate runs the EL-completion rules to a fixed point and returns
// once no rule adds a label or successor in an entire sweep.
//
// Termination is structural: individuals are bounded by |S|, every
// label set is a subset of S, and successors are bounded by
// |individuals|² · |roles| — each sweep strictly grows one of these
// finite sets until saturation, so the loop always halts.
func (m *Model) Saturate() error {
	if !m.seeded {
		return &UninitializedModelError{}
	}

	sweep := 0
	for {
		sweep++
		changed := false
		staged := make(map[ConceptID]*Individual)

		for _, ind := range m.individuals {
			if m.applyConceptRules(ind) {
				changed = true
			}
			if m.applyExistRule1(ind, staged) {
				changed = true
			}
		}

		for concept, ind := range staged {
			m.individuals[concept] = ind
		}

		m.log.Debug().
			Int("sweep", sweep).
			Int("individuals", len(m.individuals)).
			Bool("changed", changed).
			Msg("completion sweep")

		if !changed {
			return nil
		}
	}
}

// applyConceptRules applies ⊤-rule, ⊓-rule 1, ⊓-rule 2, ∃-rule 2 and
// ⊑-rule to one individual's current label set. It returns whether any
// rule added a new label; changed is OR-accumulated across every rule
// firing in the call, never reassigned, so an earlier rule's addition in
// the same sweep is never lost.
func (m *Model) applyConceptRules(ind *Individual) bool {
	changed := false

	// ⊤-rule: ⊤ is always present (seeded at individual creation, but
	// re-asserted here so the invariant holds even if a future grammar
	// change stops seeding it).
	if m.add(ind, Top) {
		changed = true
	}

	snapshot := func() []ConceptID {
		out := make([]ConceptID, 0, len(ind.Labels))
		for c := range ind.Labels {
			out = append(out, c)
		}
		return out
	}

	// ⊓-rule 1: Conj(C1, C2) ∈ labels ⇒ add C1, C2.
	for _, c := range snapshot() {
		if m.store.Kind(c) == KindConj {
			l, r := m.store.ConjParts(c)
			if m.add(ind, l) {
				changed = true
			}
			if m.add(ind, r) {
				changed = true
			}
		}
	}

	// ⊓-rule 2: C, D ∈ labels ⇒ add Conj(C, D), for every ORDERED pair
	// (C, D) including C = D. Symmetric application is required so the
	// swapped form Conj(D, C) is also derived when it lies in S.
	current := snapshot()
	for _, c := range current {
		for _, d := range current {
			conj := m.store.Conj(c, d)
			if m.add(ind, conj) {
				changed = true
			}
		}
	}

	// ∃-rule 2: an r-successor e with C ∈ labels(e) ⇒ add ∃r.C.
	for role, succs := range ind.Successors {
		for succConcept := range succs {
			succ, ok := m.individuals[succConcept]
			if !ok {
				continue
			}
			for c := range succ.Labels {
				exist := m.store.Exist(role, c)
				if m.add(ind, exist) {
					changed = true
				}
			}
		}
	}

	// ⊑-rule: C ∈ labels and Gci(C, D) ∈ TBox ⇒ add D.
	for _, c := range snapshot() {
		for _, d := range m.gciByLHS[c] {
			if m.add(ind, d) {
				changed = true
			}
		}
	}

	return changed
}

// applyExistRule1 ensures, for every Exist(r, C) in ind's labels, an
// r-successor with initial concept C — reusing an existing individual
// (live or staged this sweep) or staging a new one. It never mutates
// the live set directly; new individuals are merged at the end of the
// sweep so the inner loop never traverses a set it is mutating.
func (m *Model) applyExistRule1(ind *Individual, staged map[ConceptID]*Individual) bool {
	changed := false
	for c := range ind.Labels {
		if m.store.Kind(c) != KindExist {
			continue
		}
		role, filler := m.store.ExistParts(c)

		witness, _ := findOrStage(m.individuals, staged, filler)

		set, ok := ind.Successors[role]
		if !ok {
			set = make(map[ConceptID]bool)
			ind.Successors[role] = set
		}
		if !set[witness.InitialConcept] {
			set[witness.InitialConcept] = true
			changed = true
		}
	}
	return changed
}

// add assigns concept to ind's labels, subject to the S-restriction:
// every label addition is conditional on the concept belonging to S. It
// returns whether the label was new.
func (m *Model) add(ind *Individual, concept ConceptID) bool {
	if !m.in(concept) {
		return false
	}
	if ind.Labels[concept] {
		return false
	}
	ind.Labels[concept] = true
	return true
}
