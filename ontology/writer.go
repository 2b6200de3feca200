package ontology

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/nodeadmin/elreasoner/reasoner"
)

const writerBufferSize = 64 * 1024

// axiomJSON is the debug-dump shape of one parsed axiom, rendered
// through Store.Format rather than raw ConceptIDs so the dump is
// human-readable.
type axiomJSON struct {
	Kind string `json:"kind"`
	LHS  string `json:"lhs"`
	RHS  string `json:"rhs"`
}

// dumpJSON is the top-level shape written by DumpRawOntology.
type dumpJSON struct {
	ConceptNames []string    `json:"concept_names"`
	Axioms       []axiomJSON `json:"axioms"`
}

// DumpRawOntology writes a loaded Ontology as indented JSON, for
// troubleshooting a load at the --log-level=debug path. It never sits
// on the query path — only the CLI's debug logging reaches it.
func DumpRawOntology(w io.Writer, ont *Ontology, store *reasoner.Store) error {
	dump := dumpJSON{
		ConceptNames: ont.ConceptNames,
		Axioms:       make([]axiomJSON, 0, len(ont.Axioms)),
	}
	for _, a := range ont.Axioms {
		kind := "SubClassOf"
		if a.Kind == reasoner.AxiomEquiv {
			kind = "EquivalentTo"
		}
		dump.Axioms = append(dump.Axioms, axiomJSON{
			Kind: kind,
			LHS:  store.Format(a.LHS),
			RHS:  store.Format(a.RHS),
		})
	}

	bw := bufio.NewWriterSize(w, writerBufferSize)
	enc := json.NewEncoder(bw)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(dump); err != nil {
		return err
	}
	return bw.Flush()
}
