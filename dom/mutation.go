package dom

import (
	"context"
	"strings"

	"golang.org/x/net/html"
)

// MutationKind classifies one observed document change.
type MutationKind int

const (
	// ChildAdded reports a node (text or element subtree) inserted into
	// the document after the initial sweep.
	ChildAdded MutationKind = iota
	// TextChanged reports an in-place change to a text node's content.
	TextChanged
)

// Mutation is one observed change. The host batches mutations and delivers
// a batch once the changes have settled; within a batch, mutations are
// ordered as they occurred.
type Mutation struct {
	Kind MutationKind
	Node *html.Node
}

// Apply translates one settled mutation batch. While the synchronizer is
// inactive (source language selected) the batch is dropped untouched.
//
// Inserted text nodes are captured and translated; inserted elements and
// their descendants are visited under the same rules as a sweep. In-place
// text changes are re-translated only when resolution actually changes the
// value, so the synchronizer's own writes cannot feed back: translated
// output resolves to itself and is a no-op.
func (s *Synchronizer) Apply(batch []Mutation) SweepStats {
	var st SweepStats
	if !s.active || s.resolve == nil {
		return st
	}
	for _, m := range batch {
		if m.Node == nil {
			continue
		}
		switch m.Kind {
		case ChildAdded:
			switch m.Node.Type {
			case html.TextNode:
				if m.Node.Parent == nil || !s.skipElement(m.Node.Parent) {
					s.visitText(m.Node, &st)
				}
			case html.ElementNode:
				s.sweepSubtree(m.Node, &st)
			}
		case TextChanged:
			if m.Node.Type == html.TextNode {
				s.visitChangedText(m.Node, &st)
			}
		}
	}
	if st.Visited > 0 {
		s.log.Debug().Int("visited", st.Visited).Int("written", st.Written).Msg("mutation batch applied")
	}
	return st
}

// Watch feeds mutation batches from the host's observation channel into
// Apply until ctx is cancelled or the channel closes. It is a convenience
// pump for hosts that deliver batches over a channel; the channel sender
// and the synchronizer's other callers must be the same goroutine's
// event flow.
func (s *Synchronizer) Watch(ctx context.Context, batches <-chan []Mutation) {
	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-batches:
			if !ok {
				return
			}
			s.Apply(batch)
		}
	}
}

// sweepSubtree visits an inserted element and its descendants: direct text
// content, placeholder and tooltip attributes, recursing through child
// elements while honoring ignored tags and opt-outs.
func (s *Synchronizer) sweepSubtree(el *html.Node, st *SweepStats) {
	if el.Type != html.ElementNode {
		return
	}
	if s.skipElement(el) {
		return
	}
	s.visitAttr(el, "placeholder", st)
	s.visitAttr(el, "title", st)
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			s.visitText(c, st)
		case html.ElementNode:
			s.sweepSubtree(c, st)
		}
	}
}

// visitChangedText handles an in-place text change. A node seen for the
// first time is captured as-is. When the current value resolves to
// something different it is fresh source text written by external code:
// the recorded original is replaced (a translated value never overwrites
// it, since translated values resolve to themselves) and the translation
// is written.
func (s *Synchronizer) visitChangedText(n *html.Node, st *SweepStats) {
	cur := n.Data
	if strings.TrimSpace(cur) == "" {
		return
	}
	if _, tracked := s.originals.textOriginal(n); !tracked {
		s.originals.captureText(n, cur)
	}
	st.Visited++
	out := s.resolve(cur)
	if out == cur {
		return
	}
	s.originals.resetText(n, cur)
	n.Data = preserveWhitespace(cur, out)
	st.Written++
}
