// Package dom keeps a rendered HTML document in sync with the selected
// language: a full sweep over the recognized text-bearing locations, live
// translation of mutation batches, and byte-identical reversion from the
// original-value cache.
//
// A Synchronizer is owned by a single goroutine, normally the host event
// loop that also delivers mutation batches. It performs no locking of its
// own.
package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// ResolveFunc translates a single string under the currently selected
// language. Unmatched text must be returned unchanged.
type ResolveFunc func(text string) string

// IgnoredTags contains tags whose subtrees are never translated.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"noscript": true,
}

// optOutAttr marks elements the host excluded from translation.
const optOutAttr = "data-no-translate"

// DefaultRegions lists the CSS selectors of the dashboard's text-bearing
// regions swept in addition to the document title, placeholders, tooltip
// attributes and option labels.
var DefaultRegions = []string{
	"h1", "h2", "h3",
	"th", "label", "button",
	"nav a",
	".card-title",
	".stat-label",
	".status-text",
	".tab",
	".modal-title",
	".empty-state",
	".health-item .name",
	".health-item .message",
}

// SweepStats summarizes one sweep or mutation batch.
type SweepStats struct {
	Visited int // translatable locations inspected
	Written int // locations whose value actually changed
}

func (s *SweepStats) add(o SweepStats) {
	s.Visited += o.Visited
	s.Written += o.Written
}

// Synchronizer applies capture-then-translate over a parsed document.
type Synchronizer struct {
	doc       *goquery.Document
	resolve   ResolveFunc
	originals *originalCache
	regions   []string
	headerSel string
	htmlLang  string
	htmlDir   string
	active    bool
	log       zerolog.Logger
}

// Option is a functional option for configuring the Synchronizer.
type Option func(*Synchronizer)

// WithRegions replaces the default region selectors.
func WithRegions(selectors []string) Option {
	return func(s *Synchronizer) {
		s.regions = selectors
	}
}

// WithHeaderSelector sets the region the language selector is injected
// into. Default ".header-actions", falling back to "header".
func WithHeaderSelector(selector string) Option {
	return func(s *Synchronizer) {
		s.headerSel = selector
	}
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Synchronizer) {
		s.log = log
	}
}

// NewSynchronizer creates a Synchronizer over doc. resolve is the single
// translation authority; it is only consulted while the synchronizer is
// active except during an explicit Sweep.
func NewSynchronizer(doc *goquery.Document, resolve ResolveFunc, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		doc:       doc,
		resolve:   resolve,
		originals: newOriginalCache(),
		regions:   DefaultRegions,
		headerSel: ".header-actions",
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Activate enables live translation of mutation batches.
func (s *Synchronizer) Activate() { s.active = true }

// Deactivate makes mutation handling inert. Observation may keep feeding
// batches; they are dropped without touching the resolver.
func (s *Synchronizer) Deactivate() { s.active = false }

// Active reports whether mutation batches are being translated.
func (s *Synchronizer) Active() bool { return s.active }

// SetLanguageAttrs sets the values stamped onto <html lang dir> during the
// next sweep. Empty values leave the attributes alone.
func (s *Synchronizer) SetLanguageAttrs(lang, dir string) {
	s.htmlLang = lang
	s.htmlDir = dir
}

// Sweep runs a full pass over the recognized locations: the document
// title, the configured regions, input/textarea placeholders, tooltip
// title attributes and option labels. Only direct text children of a
// region element are rewritten; nested element markup (icons, badges) is
// left intact. Every visit captures the original before the first write,
// and a value is only written when it actually differs, so sweeping twice
// under the same language writes nothing the second time.
func (s *Synchronizer) Sweep() SweepStats {
	var st SweepStats
	if s.doc == nil || s.resolve == nil {
		return st
	}

	s.doc.Find("title").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			s.visitDirectText(n, &st)
		}
	})
	for _, selector := range s.regions {
		s.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			for _, n := range sel.Nodes {
				s.visitDirectText(n, &st)
			}
		})
	}
	s.doc.Find("input[placeholder], textarea[placeholder]").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			s.visitAttr(n, "placeholder", &st)
		}
	})
	s.doc.Find("[title]").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			s.visitAttr(n, "title", &st)
		}
	})
	s.doc.Find("option").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			s.visitDirectText(n, &st)
		}
	})
	s.stampLanguageAttrs(&st)

	s.log.Debug().Int("visited", st.Visited).Int("written", st.Written).Msg("sweep complete")
	return st
}

// Revert restores every tracked text node and attribute to its recorded
// original without consulting the resolver, and returns the number of
// locations that changed. The cache is retained for future re-translation.
func (s *Synchronizer) Revert() int {
	restored := 0
	for n, orig := range s.originals.text {
		if n.Data != orig {
			n.Data = orig
			restored++
		}
	}
	for key, rec := range s.originals.attr {
		if rec.present {
			if cur, ok := getAttr(key.node, key.name); !ok || cur != rec.value {
				setAttr(key.node, key.name, rec.value)
				restored++
			}
			continue
		}
		if _, ok := getAttr(key.node, key.name); ok {
			removeAttr(key.node, key.name)
			restored++
		}
	}
	s.log.Debug().Int("restored", restored).Msg("reverted to originals")
	return restored
}

// Tracked returns the number of node/attribute identities in the
// original-value cache.
func (s *Synchronizer) Tracked() int {
	return s.originals.Len()
}

// visitDirectText translates the direct text children of an element,
// skipping opted-out and ignored subtrees.
func (s *Synchronizer) visitDirectText(el *html.Node, st *SweepStats) {
	if el == nil || el.Type != html.ElementNode || s.skipElement(el) {
		return
	}
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			s.visitText(c, st)
		}
	}
}

// visitText applies capture-then-translate to one text node. Re-sweeps
// under a new language resolve from the cached original, never from the
// already-translated content.
func (s *Synchronizer) visitText(n *html.Node, st *SweepStats) {
	if strings.TrimSpace(n.Data) == "" {
		return
	}
	st.Visited++
	orig := s.originals.captureText(n, n.Data)
	out := s.resolve(orig)
	if out != orig {
		out = preserveWhitespace(orig, out)
	}
	if n.Data != out {
		n.Data = out
		st.Written++
	}
}

// visitAttr applies capture-then-translate to one attribute value.
func (s *Synchronizer) visitAttr(el *html.Node, name string, st *SweepStats) {
	if el == nil || el.Type != html.ElementNode || s.skipElement(el) {
		return
	}
	cur, ok := getAttr(el, name)
	if !ok || strings.TrimSpace(cur) == "" {
		return
	}
	st.Visited++
	rec := s.originals.captureAttr(el, name, cur, true)
	out := s.resolve(rec.value)
	if out != rec.value {
		out = preserveWhitespace(rec.value, out)
	}
	if cur != out {
		setAttr(el, name, out)
		st.Written++
	}
}

// stampLanguageAttrs writes the html element's lang/dir attributes through
// the attribute cache so reversion restores the host's values exactly,
// removing attributes it had not set.
func (s *Synchronizer) stampLanguageAttrs(st *SweepStats) {
	if s.htmlLang == "" {
		return
	}
	sel := s.doc.Find("html").First()
	if len(sel.Nodes) == 0 {
		return
	}
	el := sel.Nodes[0]
	for _, pair := range [][2]string{{"lang", s.htmlLang}, {"dir", s.htmlDir}} {
		name, value := pair[0], pair[1]
		if value == "" {
			continue
		}
		cur, present := getAttr(el, name)
		s.originals.captureAttr(el, name, cur, present)
		if cur != value {
			setAttr(el, name, value)
			st.Written++
		}
	}
}

// skipElement reports whether el or one of its ancestors is ignored or
// opted out.
func (s *Synchronizer) skipElement(el *html.Node) bool {
	for n := el; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		if IgnoredTags[strings.ToLower(n.Data)] || hasAttr(n, optOutAttr) {
			return true
		}
	}
	return false
}

// preserveWhitespace keeps the original leading/trailing whitespace around
// a translated value.
func preserveWhitespace(original, translated string) string {
	leadingLen := len(original) - len(strings.TrimLeft(original, " \t\n\r"))
	leading := original[:leadingLen]

	trailingLen := len(original) - len(strings.TrimRight(original, " \t\n\r"))
	trailing := ""
	if trailingLen > 0 {
		trailing = original[len(original)-trailingLen:]
	}

	return leading + translated + trailing
}

func getAttr(n *html.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, name string) bool {
	_, ok := getAttr(n, name)
	return ok
}

func setAttr(n *html.Node, name, value string) {
	for i, attr := range n.Attr {
		if attr.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

func removeAttr(n *html.Node, name string) {
	for i, attr := range n.Attr {
		if attr.Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
