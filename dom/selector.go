package dom

import (
	"html"
	"strings"
)

// LangOption is one entry of the injected language selector.
type LangOption struct {
	Code  string
	Label string
}

// selectorClass identifies the injected control. The element carries the
// translation opt-out so the sweep never rewrites its labels.
const selectorClass = "lang-select"

// InjectSelector inserts a <select> offering the given languages into the
// configured header region, falling back to the first <header> element.
// current marks the pre-selected option. Injection happens at most once;
// with no header present or the control already in place it is a no-op.
// The host binds the control's change event to Session.Switch.
func (s *Synchronizer) InjectSelector(current string, options []LangOption) {
	if s.doc == nil || len(options) == 0 {
		return
	}
	if s.doc.Find("select." + selectorClass).Length() > 0 {
		return
	}
	header := s.doc.Find(s.headerSel).First()
	if header.Length() == 0 {
		header = s.doc.Find("header").First()
	}
	if header.Length() == 0 {
		s.log.Debug().Str("selector", s.headerSel).Msg("no header region, selector not injected")
		return
	}

	var b strings.Builder
	b.WriteString(`<select class="` + selectorClass + `" ` + optOutAttr + `="">`)
	for _, opt := range options {
		b.WriteString(`<option value="` + html.EscapeString(opt.Code) + `"`)
		if opt.Code == current {
			b.WriteString(` selected=""`)
		}
		b.WriteString(`>` + html.EscapeString(opt.Label) + `</option>`)
	}
	b.WriteString(`</select>`)
	header.AppendHtml(b.String())
}
