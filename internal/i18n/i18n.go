// Package i18n holds the bilingual display strings and the language tag
// handling used to pick the initial display language.
package i18n

import (
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the two supported display languages.
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// Default is used whenever a requested language cannot be matched.
const Default = Chinese

var (
	supportedTags = []language.Tag{language.Chinese, language.English}
	supported     = []Language{Chinese, English}
	matcher       = language.NewMatcher(supportedTags)
)

// Parse matches a BCP 47 tag ("en", "en-US", "zh-CN", ...) against the
// supported languages. The boolean is false when the value was empty,
// malformed or unsupported, in which case Default is returned.
func Parse(value string) (Language, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No || idx < 0 || idx >= len(supported) {
		return Default, false
	}
	return supported[idx], true
}

// FromQuery reads the "lang" parameter from a URL query string such as
// "?lang=en" or "lang=zh&x=1".
func FromQuery(raw string) (Language, bool) {
	values, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(raw), "?"))
	if err != nil {
		return Default, false
	}
	return Parse(values.Get("lang"))
}

// Toggle flips between the two supported languages.
func (l Language) Toggle() Language {
	if l == English {
		return Chinese
	}
	return English
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == Chinese || l == English
}

func (l Language) String() string {
	return string(l)
}
