package l10n

import (
	"strings"

	"golang.org/x/text/language"
)

// LanguageNames maps language codes to the label shown in the selector.
// Labels are written in their own language so every user can find theirs.
var LanguageNames = map[Lang]string{
	Chinese:    "中文",
	English:    "English",
	Vietnamese: "Tiếng Việt",
}

// RTLLanguages contains base language codes written right to left. None of
// the current targets are RTL; the set is kept for the html dir attribute.
var RTLLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian/Farsi
	"ur": true, // Urdu
}

// LanguageName returns the selector label for a language code.
// Falls back to the code itself if not found.
func LanguageName(lang Lang) string {
	if name, ok := LanguageNames[lang]; ok {
		return name
	}
	return string(lang)
}

// Direction returns "rtl" for right-to-left languages, "ltr" otherwise.
func Direction(lang Lang) string {
	base := strings.SplitN(string(lang), "-", 2)[0]
	base = strings.SplitN(base, "_", 2)[0]
	if RTLLanguages[strings.ToLower(base)] {
		return "rtl"
	}
	return "ltr"
}

// ToHTMLLang converts a language code to the html lang attribute format
// (e.g. "zh_CN" → "zh-CN").
func ToHTMLLang(lang Lang) string {
	return strings.ReplaceAll(string(lang), "_", "-")
}

// Normalize maps a host-provided code ("en-US", "vi_VN", "ZH") to a
// supported language. Returns false when no supported language matches.
func Normalize(code string) (Lang, bool) {
	base := strings.SplitN(code, "-", 2)[0]
	base = strings.SplitN(base, "_", 2)[0]
	l := Lang(strings.ToLower(base))
	if Supported(l) {
		return l, true
	}
	return "", false
}

// matcher resolves BCP-47 hints against the supported languages. The order
// mirrors SourceLang followed by TargetLangs, so the source language wins
// on a tie.
var matcher = language.NewMatcher([]language.Tag{
	language.Chinese,
	language.English,
	language.Vietnamese,
})

// MatchHints picks the best supported language for a list of BCP-47 hints
// (e.g. the values of an Accept-Language header). Unparseable hints are
// ignored; with no usable hint the source language is returned.
func MatchHints(hints ...string) Lang {
	var tags []language.Tag
	for _, h := range hints {
		for _, part := range strings.Split(h, ",") {
			part = strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
			if part == "" {
				continue
			}
			if tag, err := language.Parse(part); err == nil {
				tags = append(tags, tag)
			}
		}
	}
	if len(tags) == 0 {
		return SourceLang
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return SourceLang
	}
	switch index {
	case 1:
		return English
	case 2:
		return Vietnamese
	default:
		return SourceLang
	}
}
