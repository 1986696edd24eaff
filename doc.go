// Package l10n provides a runtime localization engine for the dashboard DOM.
//
// The engine rewrites visible text in an already-rendered HTML document
// using a curated exact-match catalog plus an ordered regex pattern table.
// Originals are cached per node so switching back to the source language
// restores byte-identical text. Content inserted after the initial sweep is
// picked up through a mutation-batch contract.
//
// Basic usage:
//
//	import (
//	    "strings"
//	    "github.com/PuerkitoBio/goquery"
//	    "github.com/panelkit/l10n"
//	    "github.com/panelkit/l10n/store"
//	)
//
//	func main() {
//	    doc, _ := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
//
//	    s := l10n.New(doc, l10n.WithStore(store.NewMemory()))
//	    if err := s.Switch(l10n.English); err != nil {
//	        log.Fatal(err)
//	    }
//	    out, _ := doc.Html() // localized document
//	    _ = out
//	}
package l10n
