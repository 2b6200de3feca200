package ontology

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nodeadmin/elreasoner/reasoner"
)

// ParseELO reads the "elo" fixture format: one axiom per line, e.g.
//
//	A subClassOf B
//	A subClassOf (B and C)
//	A subClassOf (r some B)
//	A equivalentTo (B and (r some C))
//
// Blank lines and lines starting with "#" are skipped. This is a
// lightweight textual axiom language for tests and quick authoring.
// path is carried only for error reporting via ParseError.
func ParseELO(r io.Reader, path string, f reasoner.Factory) (*Ontology, error) {
	ont := &Ontology{}
	seen := make(map[string]bool)
	declare := func(name string) {
		if !seen[name] {
			seen[name] = true
			ont.ConceptNames = append(ont.ConceptNames, name)
		}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		toks := tokenizeELO(line)
		if len(toks) < 3 {
			return nil, &reasoner.ParseError{Path: path, Err: fmt.Errorf("line %d: malformed axiom %q", lineNo, line)}
		}

		subject := toks[0]
		verb := toks[1]
		if verb != "subClassOf" && verb != "equivalentTo" {
			return nil, &reasoner.ParseError{Path: path, Err: fmt.Errorf("line %d: expected subClassOf/equivalentTo, got %q", lineNo, verb)}
		}

		declare(subject)
		lhs := f.Name(subject)

		ts := &tokenStream{toks: toks[2:]}
		rhs, err := parseELOExpr(ts, f)
		if err != nil {
			return nil, &reasoner.ParseError{Path: path, Err: fmt.Errorf("line %d: %w", lineNo, err)}
		}
		if !ts.atEnd() {
			return nil, &reasoner.ParseError{Path: path, Err: fmt.Errorf("line %d: trailing tokens after axiom", lineNo)}
		}

		if verb == "subClassOf" {
			ont.Axioms = append(ont.Axioms, f.Gci(lhs, rhs))
		} else {
			ont.Axioms = append(ont.Axioms, f.Equiv(lhs, rhs))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &reasoner.ParseError{Path: path, Err: err}
	}
	return ont, nil
}

// tokenStream is a cursor over a pre-split token slice.
type tokenStream struct {
	toks []string
	pos  int
}

func (t *tokenStream) atEnd() bool { return t.pos >= len(t.toks) }

func (t *tokenStream) next() (string, error) {
	if t.atEnd() {
		return "", fmt.Errorf("unexpected end of expression")
	}
	tok := t.toks[t.pos]
	t.pos++
	return tok, nil
}

func (t *tokenStream) peekAt(offset int) string {
	i := t.pos + offset
	if i < 0 || i >= len(t.toks) {
		return ""
	}
	return t.toks[i]
}

// tokenizeELO splits a line into "(", ")", and identifier/keyword
// tokens, so parens need not be whitespace-separated from their
// neighbors (both "(B and C)" and "( B and C )" tokenize identically).
func tokenizeELO(line string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case r == ' ' || r == '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

// parseELOExpr parses one concept expression:
//
//	expr := "Thing" | ident | "(" expr "and" expr ")" | "(" ident "some" expr ")"
//
// The role/conjunction ambiguity inside "(" is resolved by one token
// of lookahead: a bare identifier immediately followed by "some" is a
// role; otherwise the "(" opens a conjunction.
func parseELOExpr(t *tokenStream, f reasoner.Factory) (reasoner.ConceptID, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}

	switch tok {
	case "Thing":
		return f.TopID(), nil

	case "(":
		if t.peekAt(1) == "some" {
			role, _ := t.next()
			if _, err := t.next(); err != nil { // consume "some"
				return 0, err
			}
			filler, err := parseELOExpr(t, f)
			if err != nil {
				return 0, err
			}
			if close, err := t.next(); err != nil || close != ")" {
				return 0, fmt.Errorf("expected ')' closing existential restriction")
			}
			return f.Exist(f.Role(role), filler), nil
		}

		left, err := parseELOExpr(t, f)
		if err != nil {
			return 0, err
		}
		if kw, err := t.next(); err != nil || kw != "and" {
			return 0, fmt.Errorf("expected 'and' in conjunction")
		}
		right, err := parseELOExpr(t, f)
		if err != nil {
			return 0, err
		}
		if close, err := t.next(); err != nil || close != ")" {
			return 0, fmt.Errorf("expected ')' closing conjunction")
		}
		return f.Conj(left, right), nil

	case ")":
		return 0, fmt.Errorf("unexpected ')'")

	default:
		return f.Name(tok), nil
	}
}
