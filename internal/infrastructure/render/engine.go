package render

import (
	"regexp"
	"strings"

	"github.com/erp/docgen/internal/domain/document"
)

// Problem codes reported for template spans the engine left unresolved
const (
	ProblemUnterminatedEach    = "UNTERMINATED_EACH"
	ProblemUnbalancedSection   = "UNBALANCED_SECTION"
	ProblemMalformedEachMarker = "MALFORMED_EACH_MARKER"
)

// Problem describes a template span that could not be resolved. The
// span is kept as literal text in the output; a partially wrong
// document beats no document for a person standing at the counter.
type Problem struct {
	Code  string `json:"code"`
	Field string `json:"field"`
}

// Gate is a section predicate that replaces the generic truthy rule
// for one named section. A gated section is evaluated exactly once,
// through the gate only.
type Gate func(rec document.Record) bool

// Engine renders the document marker language: scalar references
// {{field}}, conditional sections {{#field}}...{{/field}} and
// iteration sections {{#each list}}...{{/each}}.
//
// Render is pure and deterministic. It never fails: malformed spans
// are left literal and reported as Problems. Substitution values are
// inserted verbatim; the assembler owns sanitization of anything that
// ends up inside markup output.
type Engine struct {
	gates map[string]Gate
}

// Option configures the engine
type Option func(*Engine)

// WithSectionGate installs a gate predicate for one section name.
func WithSectionGate(field string, gate Gate) Option {
	return func(e *Engine) {
		e.gates[field] = gate
	}
}

// NewEngine creates a new template engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{gates: make(map[string]Gate)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

const (
	eachOpenPrefix = "{{#each "
	eachClose      = "{{/each}}"
)

var (
	fieldNamePattern = `[A-Za-z_][A-Za-z0-9_]*`
	scalarMarkerRe   = regexp.MustCompile(`\{\{(` + fieldNamePattern + `)\}\}`)
	sectionOpenRe    = regexp.MustCompile(`\{\{#(` + fieldNamePattern + `)\}\}`)
	eachOpenMarkerRe = regexp.MustCompile(`^\{\{#each (` + fieldNamePattern + `)\}\}`)
	eachOpenAnywhere = regexp.MustCompile(`\{\{#each (` + fieldNamePattern + `)\}\}`)
)

// Render resolves all markers of the template against the record.
// Iteration sections expand first against their own child scope, then
// conditional sections, then scalar interpolation; the ordering is what
// keeps iteration-local field names from leaking into the outer scope.
func (e *Engine) Render(template string, rec document.Record) (string, []Problem) {
	var problems []Problem
	out := e.renderScope(template, rec, &problems)
	return out, problems
}

func (e *Engine) renderScope(text string, rec document.Record, problems *[]Problem) string {
	expanded := e.expandEach(text, rec, problems)
	resolved := e.resolveSections(expanded, rec, problems)
	return interpolateScalars(resolved, rec)
}

// expandEach rewrites every {{#each list}}...{{/each}} span. Each child
// record renders the enclosed block in its own scope, recursively, so
// nested iteration works without the parent scope bleeding through.
func (e *Engine) expandEach(text string, rec document.Record, problems *[]Problem) string {
	var out strings.Builder
	pos := 0
	for {
		rel := strings.Index(text[pos:], eachOpenPrefix)
		if rel < 0 {
			out.WriteString(text[pos:])
			return out.String()
		}
		open := pos + rel
		m := eachOpenMarkerRe.FindStringSubmatch(text[open:])
		if m == nil {
			// "{{#each" without a well-formed name; keep it literal
			*problems = append(*problems, Problem{Code: ProblemMalformedEachMarker})
			out.WriteString(text[pos : open+len(eachOpenPrefix)])
			pos = open + len(eachOpenPrefix)
			continue
		}
		name := m[1]
		blockStart := open + len(m[0])

		closeStart := findEachClose(text, blockStart)
		if closeStart < 0 {
			*problems = append(*problems, Problem{Code: ProblemUnterminatedEach, Field: name})
			out.WriteString(text[pos : open+len(m[0])])
			pos = open + len(m[0])
			continue
		}
		closeEnd := closeStart + len(eachClose)

		out.WriteString(text[pos:open])
		block := text[blockStart:closeStart]
		if v, ok := rec.Get(name); ok && v.IsList() {
			// Empty list yields empty output for the whole span.
			for _, child := range v.List() {
				out.WriteString(e.renderScope(block, child, problems))
			}
		} else {
			// Missing or non-list field: the span stays literal, same
			// rule as a missing scalar reference.
			out.WriteString(text[open:closeEnd])
		}
		pos = closeEnd
	}
}

// findEachClose returns the index of the {{/each}} matching the block
// that starts at from, honoring nested each-sections. Returns -1 when
// the block is unterminated.
func findEachClose(text string, from int) int {
	depth := 0
	pos := from
	for {
		nextClose := strings.Index(text[pos:], eachClose)
		if nextClose < 0 {
			return -1
		}
		nextClose += pos

		loc := eachOpenAnywhere.FindStringIndex(text[pos:])
		if loc != nil && pos+loc[0] < nextClose {
			depth++
			pos = pos + loc[1]
			continue
		}
		if depth == 0 {
			return nextClose
		}
		depth--
		pos = nextClose + len(eachClose)
	}
}

// resolveSections resolves conditional sections in the current scope.
// A section whose field is absent is falsy and omitted; a section with
// no matching close marker is left literal and reported.
func (e *Engine) resolveSections(text string, rec document.Record, problems *[]Problem) string {
	m := sectionOpenRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text
	}
	openStart, openEnd := m[0], m[1]
	name := text[m[2]:m[3]]

	closeStart := findSectionClose(text, openEnd, name)
	if closeStart < 0 {
		*problems = append(*problems, Problem{Code: ProblemUnbalancedSection, Field: name})
		return text[:openEnd] + e.resolveSections(text[openEnd:], rec, problems)
	}
	closeEnd := closeStart + len("{{/"+name+"}}")

	inner := ""
	if e.sectionEnabled(name, rec) {
		inner = e.resolveSections(text[openEnd:closeStart], rec, problems)
	}
	return text[:openStart] + inner + e.resolveSections(text[closeEnd:], rec, problems)
}

// sectionEnabled applies the registered gate for the section, or the
// generic truthy rule. Exactly one rule ever runs per section.
func (e *Engine) sectionEnabled(name string, rec document.Record) bool {
	if gate, ok := e.gates[name]; ok {
		return gate(rec)
	}
	v, ok := rec.Get(name)
	return ok && v.Truthy()
}

// findSectionClose returns the index of the {{/name}} matching the
// section opened before from, honoring nested sections of the same name.
func findSectionClose(text string, from int, name string) int {
	open := "{{#" + name + "}}"
	closeMarker := "{{/" + name + "}}"
	depth := 0
	pos := from
	for {
		nextClose := strings.Index(text[pos:], closeMarker)
		if nextClose < 0 {
			return -1
		}
		nextClose += pos

		nextOpen := strings.Index(text[pos:], open)
		if nextOpen >= 0 && pos+nextOpen < nextClose {
			depth++
			pos = pos + nextOpen + len(open)
			continue
		}
		if depth == 0 {
			return nextClose
		}
		depth--
		pos = nextClose + len(closeMarker)
	}
}

// interpolateScalars replaces {{field}} markers for present scalar
// fields. List-valued fields are never scalar-interpolated and markers
// for absent fields stay literal by contract.
func interpolateScalars(text string, rec document.Record) string {
	return scalarMarkerRe.ReplaceAllStringFunc(text, func(marker string) string {
		name := marker[2 : len(marker)-2]
		v, ok := rec.Get(name)
		if !ok || v.IsList() {
			return marker
		}
		return v.String()
	})
}
