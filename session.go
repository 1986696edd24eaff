package l10n

import (
	"context"
	"sort"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/panelkit/l10n/dom"
	"github.com/panelkit/l10n/store"
)

// PreferenceKey is the store slot holding the persisted language choice.
const PreferenceKey = "panel.lang"

// Session owns the language state for one document: the current language,
// the synchronizer with its original-value cache, the persisted
// preference, the wrapped side-effect hooks and the registered refresh
// entry points.
//
// A Session is driven by the host event loop and is not safe for
// concurrent use; all methods must be called from the goroutine that also
// delivers mutation batches.
type Session struct {
	resolver *Resolver
	store    store.Store
	sync     *dom.Synchronizer
	hooks    Hooks
	refresh  map[string]func()
	hints    []string
	domOpts  []dom.Option
	lang     Lang
	log      zerolog.Logger
}

// Option is a functional option for configuring the Session.
type Option func(*Session)

// WithStore sets the language-preference store. Default is an in-memory
// store.
func WithStore(st store.Store) Option {
	return func(s *Session) {
		s.store = st
	}
}

// WithLogger sets the logger for the session and its synchronizer.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithResolver replaces the default resolver.
func WithResolver(r *Resolver) Option {
	return func(s *Session) {
		s.resolver = r
	}
}

// WithHooks registers the host's side-effecting functions for
// interception. Handlers left nil are skipped silently.
func WithHooks(h Hooks) Option {
	return func(s *Session) {
		s.hooks = h
	}
}

// WithRefreshFunc registers a named data-refresh entry point, invoked
// best-effort after switching from the source language to a target so
// freshly fetched content renders and is swept promptly.
func WithRefreshFunc(name string, fn func()) Option {
	return func(s *Session) {
		s.refresh[name] = fn
	}
}

// WithLanguageHints supplies BCP-47 hints (e.g. Accept-Language values)
// used to pick the initial language when no preference is persisted.
func WithLanguageHints(hints ...string) Option {
	return func(s *Session) {
		s.hints = hints
	}
}

// WithRegions replaces the synchronizer's default region selectors.
func WithRegions(selectors []string) Option {
	return func(s *Session) {
		s.domOpts = append(s.domOpts, dom.WithRegions(selectors))
	}
}

// WithHeaderSelector sets the region the language selector is injected
// into.
func WithHeaderSelector(selector string) Option {
	return func(s *Session) {
		s.domOpts = append(s.domOpts, dom.WithHeaderSelector(selector))
	}
}

// New creates a Session over doc, reads the persisted preference once and,
// if a target language was restored, runs the initial sweep and activates
// live synchronization. A failing store degrades to the source language
// and never prevents the page from functioning.
func New(doc *goquery.Document, opts ...Option) *Session {
	s := &Session{
		resolver: NewResolver(),
		store:    store.NewMemory(),
		refresh:  make(map[string]func()),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lang = s.resolver.Source()
	domOpts := append([]dom.Option{dom.WithLogger(s.log)}, s.domOpts...)
	s.sync = dom.NewSynchronizer(doc, s.Translate, domOpts...)
	s.hooks = s.hooks.wrap(s.Translate)
	s.restore()
	return s
}

// restore loads the persisted language, falling back to the host's
// language hints and finally the source language.
func (s *Session) restore() {
	value, err := s.store.Get(PreferenceKey)
	if err != nil {
		s.log.Warn().Err(&StoreError{Op: "get " + PreferenceKey, Cause: err}).
			Msg("language preference unavailable, using source language")
		return
	}

	lang := s.resolver.Source()
	switch {
	case value != "":
		if l, ok := Normalize(value); ok {
			lang = l
		} else {
			s.log.Debug().Str("value", value).Msg("ignoring unknown persisted language")
		}
	case len(s.hints) > 0:
		lang = MatchHints(s.hints...)
	}

	if lang == s.resolver.Source() {
		return
	}
	s.lang = lang
	s.applyLanguage()
}

// Switch moves the session to lang. Switching to a target language
// persists the choice, sweeps the document and activates live
// synchronization; switching back to the source language persists, runs
// full reversion and leaves observation logically inert. Switching between
// two targets re-sweeps from the cached originals rather than from the
// already-translated text.
func (s *Session) Switch(lang Lang) error {
	if !Supported(lang) {
		return &UnsupportedLanguageError{Lang: lang}
	}
	if err := s.store.Set(PreferenceKey, string(lang)); err != nil {
		s.log.Warn().Err(&StoreError{Op: "set " + PreferenceKey, Cause: err}).
			Msg("language preference not persisted")
	}

	prev := s.lang
	s.lang = lang
	s.log.Debug().Str("from", string(prev)).Str("to", string(lang)).Msg("language switch")

	if lang == s.resolver.Source() {
		s.sync.Deactivate()
		s.sync.Revert()
		return nil
	}

	s.applyLanguage()
	if prev == s.resolver.Source() {
		s.callRefresh()
	}
	return nil
}

func (s *Session) applyLanguage() {
	s.sync.SetLanguageAttrs(ToHTMLLang(s.lang), Direction(s.lang))
	s.sync.Activate()
	s.sync.Sweep()
}

// callRefresh invokes the registered refresh entry points in name order.
// They are fire-and-forget: a panicking entry point is logged and the rest
// still run.
func (s *Session) callRefresh() {
	names := make([]string, 0, len(s.refresh))
	for name := range s.refresh {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fn := s.refresh[name]
		if fn == nil {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.log.Warn().Str("refresh", name).Interface("panic", r).
						Msg("refresh entry point panicked")
				}
			}()
			fn()
		}()
	}
}

// Translate resolves text for the currently selected language. This is the
// function exposed to collaborators and the one wrapped hooks consult.
func (s *Session) Translate(text string) string {
	return s.resolver.Resolve(text, s.lang)
}

// Lang returns the current language code.
func (s *Session) Lang() Lang {
	return s.lang
}

// Hooks returns the wrapped side-effect handlers. Handlers the host never
// registered stay nil.
func (s *Session) Hooks() Hooks {
	return s.hooks
}

// Observe translates one settled mutation batch. While the source language
// is selected the batch is dropped untouched.
func (s *Session) Observe(batch []dom.Mutation) dom.SweepStats {
	return s.sync.Apply(batch)
}

// Watch pumps mutation batches from the host's observation channel into
// Observe until ctx is cancelled or the channel closes.
func (s *Session) Watch(ctx context.Context, batches <-chan []dom.Mutation) {
	s.sync.Watch(ctx, batches)
}

// InjectSelector inserts the language-selection control into the header
// region, offering the source language and all configured targets with the
// current choice pre-selected.
func (s *Session) InjectSelector() {
	options := make([]dom.LangOption, 0, 1+len(TargetLangs))
	source := s.resolver.Source()
	options = append(options, dom.LangOption{Code: string(source), Label: LanguageName(source)})
	for _, lang := range TargetLangs {
		options = append(options, dom.LangOption{Code: string(lang), Label: LanguageName(lang)})
	}
	s.sync.InjectSelector(string(s.lang), options)
}

// Synchronizer exposes the underlying DOM synchronizer, mainly for
// inspection in tests and host tooling.
func (s *Session) Synchronizer() *dom.Synchronizer {
	return s.sync
}
