// Package i18n is the static translation table for the UI copy.
// Each supported language is one flat key→string map; a missing key is
// returned as-is so nothing is ever silently swallowed.
package i18n

import "golang.org/x/text/language"

// Supported languages, in matcher preference order.
var Supported = []language.Tag{
	language.English,
	language.Serbian,
}

// Default is the language a fresh session starts in.
var Default = language.Serbian

var matcher = language.NewMatcher(Supported)

// Match resolves an arbitrary tag to the closest supported language.
func Match(tag language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tag)
	return Supported[idx]
}

// T returns the translation of key in lang, matching lang to a
// supported language first. Unknown keys come back unchanged.
func T(lang language.Tag, key string) string {
	table, ok := translations[Match(lang)]
	if !ok {
		table = translations[language.English]
	}
	if msg, ok := table[key]; ok {
		return msg
	}
	return key
}
