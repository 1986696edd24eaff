package dom

import "golang.org/x/net/html"

// attrKey identifies an attribute on a specific element node.
type attrKey struct {
	node *html.Node
	name string
}

// attrRecord remembers an attribute's pre-translation state. present is
// false when the attribute did not exist, so reversion removes it instead
// of writing an empty value.
type attrRecord struct {
	value   string
	present bool
}

// originalCache stores the untranslated value of every visited text node
// and attribute, keyed by node identity. A value is captured on first
// visit and never overwritten by a translated value; it is the single
// source of truth for reversion. Entries survive reversion so a later
// re-translation does not need to re-discover originals.
type originalCache struct {
	text map[*html.Node]string
	attr map[attrKey]attrRecord
}

func newOriginalCache() *originalCache {
	return &originalCache{
		text: make(map[*html.Node]string),
		attr: make(map[attrKey]attrRecord),
	}
}

// captureText records value as n's original unless one is already known,
// and returns the original.
func (c *originalCache) captureText(n *html.Node, value string) string {
	if orig, ok := c.text[n]; ok {
		return orig
	}
	c.text[n] = value
	return value
}

// textOriginal returns the recorded original for n.
func (c *originalCache) textOriginal(n *html.Node) (string, bool) {
	orig, ok := c.text[n]
	return orig, ok
}

// resetText replaces n's original. Only called when external code wrote
// fresh source-language text into an already-tracked node.
func (c *originalCache) resetText(n *html.Node, value string) {
	c.text[n] = value
}

// captureAttr records the attribute's state unless already known, and
// returns the original record.
func (c *originalCache) captureAttr(n *html.Node, name, value string, present bool) attrRecord {
	key := attrKey{node: n, name: name}
	if rec, ok := c.attr[key]; ok {
		return rec
	}
	rec := attrRecord{value: value, present: present}
	c.attr[key] = rec
	return rec
}

// Len returns the number of tracked identities.
func (c *originalCache) Len() int {
	return len(c.text) + len(c.attr)
}
