package reasoner

import "github.com/rs/zerolog"

// Hierarchy maps each named concept to its set of named subsumers,
// always including itself and ⊤. It is mutated only by the hierarchy
// builder and is not exposed mid-construction.
type Hierarchy struct {
	store    *Store
	tbox     *TBox
	universe *Universe
	log      zerolog.Logger

	subsumers map[ConceptID]map[ConceptID]bool
}

// NewHierarchy allocates an empty hierarchy builder over a normalized
// TBox and its concept universe.
func NewHierarchy(store *Store, tbox *TBox, universe *Universe, log zerolog.Logger) *Hierarchy {
	return &Hierarchy{
		store:     store,
		tbox:      tbox,
		universe:  universe,
		log:       log,
		subsumers: make(map[ConceptID]map[ConceptID]bool),
	}
}

// GetSubsumers completes the model seeded with N, seeds H[N] with the
// named concepts (plus ⊤) found in its labels, then transitively closes
// by recursively computing subsumers of anything in H[N] not yet
// populated.
func (h *Hierarchy) GetSubsumers(n ConceptID) (map[ConceptID]bool, error) {
	if set, ok := h.subsumers[n]; ok {
		return set, nil
	}

	labels, err := CompleteLabels(h.store, h.tbox, h.universe, n, h.log)
	if err != nil {
		return nil, err
	}

	set := make(map[ConceptID]bool, len(labels))
	for c := range labels {
		if c == Top || h.isNamed(c) {
			set[c] = true
		}
	}
	// Mark as computed before recursing, so a cycle (A ⊑ ∃r.A style
	// mutual subsumption, or simply re-entering via a subsumer of a
	// subsumer) terminates instead of looping.
	h.subsumers[n] = set

	for m := range set {
		if m == n {
			continue
		}
		sub, err := h.GetSubsumers(m)
		if err != nil {
			return nil, err
		}
		for c := range sub {
			set[c] = true
		}
	}
	h.subsumers[n] = set

	h.log.Info().
		Str("concept", h.store.Format(n)).
		Int("subsumers", len(set)).
		Msg("subsumers computed")

	return set, nil
}

func (h *Hierarchy) isNamed(c ConceptID) bool {
	return h.store.Kind(c) == KindName && h.universe.Contains(c)
}

// Classify computes subsumers for every named concept, then iterates the
// transitive-closure step over the whole map until stable
// (Warshall-style).
func (h *Hierarchy) Classify() (map[ConceptID]map[ConceptID]bool, error) {
	for _, n := range h.universe.NamedConcepts() {
		if _, err := h.GetSubsumers(n); err != nil {
			return nil, err
		}
	}

	for {
		changed := false
		for n, set := range h.subsumers {
			for m := range set {
				if m == n {
					continue
				}
				for c := range h.subsumers[m] {
					if !set[c] {
						set[c] = true
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	h.log.Info().Int("concepts", len(h.subsumers)).Msg("classification complete")
	return h.subsumers, nil
}
