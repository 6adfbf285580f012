package templates

import (
	"fmt"

	"github.com/erp/docgen/internal/domain/document"
	"github.com/erp/docgen/internal/domain/shared"
)

// Key identifies one template slot: document kind crossed with locale
type Key struct {
	Kind   document.DocKind
	Locale document.Locale
}

// Overrides carries caller-supplied custom template texts per slot.
// It is an explicit configuration value, passed into template
// resolution rather than looked up from ambient state.
type Overrides map[Key]string

// Source records where a resolved template came from
type Source string

const (
	SourceBuiltin  Source = "BUILTIN"
	SourceOverride Source = "OVERRIDE"
)

// Selection is the outcome of template resolution
type Selection struct {
	Template *document.Template
	Source   Source
	// OverrideDiscarded is set when a custom template existed for the
	// slot but was rejected (missing line-item block or invalid) and
	// the built-in default was used instead.
	OverrideDiscarded bool
}

// Store holds the built-in default templates, one per kind and locale.
// Contents are static configuration: loaded once, never mutated.
type Store struct {
	builtins map[Key]*document.Template
}

// NewStore creates the store and validates every built-in template
func NewStore() (*Store, error) {
	builtins := make(map[Key]*document.Template)
	for _, def := range builtinDefs() {
		tmpl, err := document.NewTemplate(def.kind, def.locale, def.name, def.content, def.profile)
		if err != nil {
			return nil, fmt.Errorf("invalid built-in template %s: %w", def.name, err)
		}
		if !tmpl.HasLineItemBlock() {
			return nil, fmt.Errorf("built-in template %s lacks the line-item block", def.name)
		}
		builtins[Key{Kind: def.kind, Locale: def.locale}] = tmpl
	}
	return &Store{builtins: builtins}, nil
}

// Builtin returns the built-in template for a slot
func (s *Store) Builtin(kind document.DocKind, locale document.Locale) (*document.Template, error) {
	tmpl, ok := s.builtins[Key{Kind: kind, Locale: locale}]
	if !ok {
		return nil, shared.NewDomainError("NOT_FOUND", "No built-in template for this kind and locale")
	}
	return tmpl, nil
}

// Resolve selects the template for a kind and locale. A custom
// override wins when present and usable; an override without the
// line-item iteration block is discarded in favor of the built-in
// default, since custom authoring cannot omit required structure.
func (s *Store) Resolve(kind document.DocKind, locale document.Locale, overrides Overrides) (*Selection, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_DOC_KIND", "Invalid document kind")
	}
	if !locale.IsValid() {
		return nil, shared.NewDomainError("INVALID_LOCALE", "Invalid locale")
	}

	builtin, err := s.Builtin(kind, locale)
	if err != nil {
		return nil, err
	}

	content, ok := overrides[Key{Kind: kind, Locale: locale}]
	if !ok {
		return &Selection{Template: builtin, Source: SourceBuiltin}, nil
	}

	custom, err := document.NewTemplate(kind, locale, "custom-"+string(kind)+"-"+string(locale), content, builtin.PaperProfile)
	if err != nil || !custom.HasLineItemBlock() {
		return &Selection{Template: builtin, Source: SourceBuiltin, OverrideDiscarded: true}, nil
	}
	return &Selection{Template: custom, Source: SourceOverride}, nil
}
