// Command elreasoner loads an ontology, normalizes it, computes the
// upward subsumer set of one named concept, and prints each subsumer on
// its own line.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nodeadmin/elreasoner/internal/config"
	"github.com/nodeadmin/elreasoner/ontology"
	"github.com/nodeadmin/elreasoner/reasoner"
)

// Exit codes distinguish the error kinds beyond a bare "non-zero":
// 1 = file-not-found/parse failure, 2 = unknown concept, 3 =
// internal/programming error.
const (
	exitOK             = 0
	exitLoadFailure    = 1
	exitUnknownConcept = 2
	exitInternal       = 3
)

var (
	logLevel string
	logFile  string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "elreasoner <ontology-file> <concept-name>",
		Short:         "EL-profile subsumption reasoner",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "", "override EL_LOG_LEVEL (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "override EL_LOG_FILE")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	path, conceptName := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return &cliError{code: exitInternal, err: fmt.Errorf("loading config: %w", err)}
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return &cliError{code: exitInternal, err: err}
	}
	defer closeLog()

	f, err := os.Open(path)
	if err != nil {
		return classifyErr(&reasoner.ParseError{Path: path, Err: err})
	}
	defer f.Close()

	store := reasoner.NewStore()

	log.Info().Str("path", path).Msg("loading ontology")
	ont, err := loadOntology(f, path, store)
	if err != nil {
		return classifyErr(err)
	}

	if log.GetLevel() <= zerolog.DebugLevel {
		var sb strings.Builder
		if derr := ontology.DumpRawOntology(&sb, ont, store); derr == nil {
			log.Debug().Str("ontology", sb.String()).Msg("parsed axioms")
		}
	}

	tbox := reasoner.Normalize(reasoner.NewTBox(ont.Axioms))
	universe := reasoner.NewUniverse(store, tbox, ont.ConceptNames)

	seed, err := universe.Resolve(conceptName)
	if err != nil {
		return classifyErr(err)
	}

	hierarchy := reasoner.NewHierarchy(store, tbox, universe, *log)
	subsumers, err := hierarchy.GetSubsumers(seed)
	if err != nil {
		return classifyErr(err)
	}

	names := make([]string, 0, len(subsumers))
	for c := range subsumers {
		if c == reasoner.Top {
			names = append(names, "⊤")
			continue
		}
		if n := store.ConceptName(c); n != "" {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}

	return nil
}

// loadOntology dispatches on file extension: ".owl"/".rdf"/".xml" is
// parsed as OWL/RDF-XML, everything else as the "elo" fixture format.
func loadOntology(r *os.File, path string, store *reasoner.Store) (*ontology.Ontology, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".owl", ".rdf", ".xml":
		return ontology.ParseOWL(r, path, store)
	default:
		return ontology.ParseELO(r, path, store)
	}
}

// cliError pairs an error with the exit code it should produce.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

// classifyErr maps a domain error to the cliError carrying its exit
// code, by type rather than by which call site happened to produce it.
func classifyErr(err error) *cliError {
	var parseErr *reasoner.ParseError
	if errors.As(err, &parseErr) {
		return &cliError{code: exitLoadFailure, err: err}
	}
	var unknownErr *reasoner.UnknownConceptError
	if errors.As(err, &unknownErr) {
		return &cliError{code: exitUnknownConcept, err: err}
	}
	return &cliError{code: exitInternal, err: err}
}

func exitCodeFor(err error) int {
	var ce *cliError
	if errors.As(err, &ce) {
		fmt.Fprintln(os.Stderr, ce.err.Error())
		return ce.code
	}
	fmt.Fprintln(os.Stderr, err.Error())
	return exitInternal
}
