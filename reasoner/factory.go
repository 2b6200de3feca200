package reasoner

// Factory is the sole coupling between the reasoning core and whatever
// external code constructs concepts, roles and axioms — concretely, the
// ontology loader package. Store implements it directly; callers should
// depend on the interface rather than *Store so a loader (or a test) can
// be exercised against a fake without pulling in the full term store.
type Factory interface {
	TopID() ConceptID
	Name(n string) ConceptID
	Role(n string) RoleID
	Conj(a, b ConceptID) ConceptID
	Exist(r RoleID, c ConceptID) ConceptID
	Gci(lhs, rhs ConceptID) Axiom
	Equiv(a, b ConceptID) Axiom
}

var _ Factory = (*Store)(nil)
