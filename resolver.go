package l10n

import "strings"

// Resolver turns a source-language string into its target-language form.
// It is pure and side-effect free; every other component funnels text
// through it. Unknown strings pass through unchanged, never an error and
// never a placeholder.
type Resolver struct {
	source   Lang
	catalog  Catalog
	patterns map[Lang][]PatternRule
}

// ResolverOption is a functional option for configuring the Resolver.
type ResolverOption func(*Resolver)

// WithCatalog replaces the default catalog.
func WithCatalog(catalog Catalog) ResolverOption {
	return func(r *Resolver) {
		r.catalog = catalog
	}
}

// WithPatterns replaces the default pattern tables.
func WithPatterns(patterns map[Lang][]PatternRule) ResolverOption {
	return func(r *Resolver) {
		r.patterns = patterns
	}
}

// WithSourceLang overrides the source language.
func WithSourceLang(lang Lang) ResolverOption {
	return func(r *Resolver) {
		r.source = lang
	}
}

// NewResolver creates a Resolver over the default catalog and pattern
// tables.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		source:   SourceLang,
		catalog:  DefaultCatalog,
		patterns: DefaultPatterns,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Source returns the resolver's source language.
func (r *Resolver) Source() Lang {
	return r.source
}

// Resolve translates text for lang. Resolution order: identity when lang is
// the source language, exact catalog match on the trimmed text, then the
// pattern table in declared order with first match winning. When nothing
// matches the original, untrimmed text is returned as-is.
func (r *Resolver) Resolve(text string, lang Lang) string {
	if lang == r.source {
		return text
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}
	if translated, ok := r.catalog.Lookup(trimmed, lang); ok {
		return translated
	}
	for _, rule := range r.patterns[lang] {
		if out, ok := rule.Apply(trimmed); ok {
			return out
		}
	}
	return text
}
