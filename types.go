package l10n

// Lang is a supported language code.
type Lang string

const (
	// Chinese is the language the dashboard UI is authored in.
	Chinese Lang = "zh"
	// English is a target language.
	English Lang = "en"
	// Vietnamese is a target language.
	Vietnamese Lang = "vi"
)

// SourceLang is the language of the document as rendered by the host.
// Resolving under SourceLang is the identity function.
const SourceLang = Chinese

// TargetLangs lists the languages the catalog and pattern tables cover.
var TargetLangs = []Lang{English, Vietnamese}

// Supported reports whether lang is the source language or a known target.
func Supported(lang Lang) bool {
	if lang == SourceLang {
		return true
	}
	for _, l := range TargetLangs {
		if l == lang {
			return true
		}
	}
	return false
}

// Translations maps a target language to the translated string.
type Translations map[Lang]string

// Catalog maps canonical source strings (whitespace-trimmed) to their
// per-language translations. Keys are unique; ordering carries no meaning.
type Catalog map[string]Translations
