package reasoner

import "github.com/rs/zerolog"

// Universe is the ontology's concept universe: every concept appearing
// anywhere in the TBox, extended with ⊤ and the named concepts declared
// by the loader. Subsumption queries reject any name or id outside it.
type Universe struct {
	store      *Store
	tbox       *TBox
	members    map[ConceptID]bool
	namedByStr map[string]ConceptID
}

// NewUniverse builds the concept universe from a normalized TBox plus
// the set of names the loader declared.
func NewUniverse(store *Store, tbox *TBox, declaredNames []string) *Universe {
	u := &Universe{
		store:      store,
		tbox:       tbox,
		members:    make(map[ConceptID]bool, 64),
		namedByStr: make(map[string]ConceptID, len(declaredNames)),
	}
	u.members[Top] = true
	for _, gci := range tbox.Gcis() {
		u.members[gci.LHS] = true
		u.members[gci.RHS] = true
	}
	for _, n := range declaredNames {
		id := store.Name(n)
		u.members[id] = true
		u.namedByStr[n] = id
	}
	return u
}

// Resolve maps a bare name to its ConceptID, rejecting unknown names.
func (u *Universe) Resolve(name string) (ConceptID, error) {
	id, ok := u.namedByStr[name]
	if !ok {
		return 0, &UnknownConceptError{Name: name}
	}
	return id, nil
}

// Contains reports whether id lies in the concept universe.
func (u *Universe) Contains(id ConceptID) bool { return u.members[id] }

// NamedConcepts returns every declared named concept's id.
func (u *Universe) NamedConcepts() []ConceptID {
	out := make([]ConceptID, 0, len(u.namedByStr))
	for _, id := range u.namedByStr {
		out = append(out, id)
	}
	return out
}

// Name returns the declared string for a ConceptID, or "" if it is not
// a declared named concept.
func (u *Universe) Name(id ConceptID) string {
	n := u.store.ConceptName(id)
	if declared, ok := u.namedByStr[n]; !ok || declared != id {
		return ""
	}
	return n
}

// QueryResult is the outcome of IsSubsumedBy: the yes/no answer plus
// the seed's full saturated label set, so the hierarchy builder can
// reuse one completion run for every candidate subsumer.
type QueryResult struct {
	Holds  bool
	Labels map[ConceptID]bool
}

// IsSubsumedBy decides O ⊨ A ⊑ B. A and B must already be resolved to
// ids lying in the universe; rejecting an unresolved name is the
// caller's responsibility via Universe.Resolve.
func IsSubsumedBy(store *Store, tbox *TBox, universe *Universe, a, b ConceptID, log zerolog.Logger) (*QueryResult, error) {
	if !universe.Contains(a) {
		return nil, &UnknownConceptError{Name: store.Format(a)}
	}
	if !universe.Contains(b) {
		return nil, &UnknownConceptError{Name: store.Format(b)}
	}

	s := InputConcepts(store, tbox, a, b)
	model := NewModel(store, tbox, s).WithLogger(log)
	model.Seed(a)
	if err := model.Saturate(); err != nil {
		return nil, err
	}

	labels := model.Initial().Labels
	log.Info().
		Str("subsumee", store.Format(a)).
		Str("subsumer", store.Format(b)).
		Bool("result", labels[b]).
		Msg("subsumption query")

	return &QueryResult{Holds: labels[b], Labels: labels}, nil
}

// CompleteLabels runs completion seeded with a single concept and
// returns its saturated label set, for the hierarchy builder's
// single-concept mode. The input-concept set is the closure over
// {seed, ⊤} and every GCI, widened with every concept the loader
// declared as a named concept — so an isolated named concept with no
// axioms of its own still counts as a legal subsumer candidate,
// matching the ontology's full concept universe.
func CompleteLabels(store *Store, tbox *TBox, universe *Universe, seed ConceptID, log zerolog.Logger) (map[ConceptID]bool, error) {
	if !universe.Contains(seed) {
		return nil, &UnknownConceptError{Name: store.Format(seed)}
	}

	s := InputConcepts(store, tbox, seed, Top)
	for _, n := range universe.NamedConcepts() {
		s[n] = true
	}

	model := NewModel(store, tbox, s).WithLogger(log)
	model.Seed(seed)
	if err := model.Saturate(); err != nil {
		return nil, err
	}
	return model.Initial().Labels, nil
}
