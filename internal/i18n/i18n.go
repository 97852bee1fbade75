// Package i18n provides the localized message catalog for JalMitra replies.
//
// Every user-visible string is resolved through Get with a message key, a
// target language and optional named parameters. The catalog covers English,
// Hindi and Marathi; a missing translation falls back to English, but a
// missing key is a programming error and panics.
package i18n

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/JalMitra/JalMitra/internal/models"
)

// Key identifies one message template in the catalog.
type Key string

// Params holds named substitutions applied to a resolved template. A template
// references a parameter as "{name}".
type Params map[string]string

// Get resolves a message key into text for the given language and applies the
// parameter substitutions. Unknown keys panic: the key set is closed and a
// miss can only be a bug in the caller.
func Get(key Key, lang models.Language, params Params) string {
	entry, ok := catalog[key]
	if !ok {
		panic(fmt.Sprintf("i18n: unknown message key %q", key))
	}

	text, ok := entry[lang]
	if !ok || text == "" {
		slog.Debug("i18n falling back to English", "key", key, "lang", lang)
		text = entry[models.LanguageEnglish]
	}

	if len(params) == 0 {
		return text
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Has reports whether the catalog defines the given key. Intended for tests
// that sweep the key space.
func Has(key Key) bool {
	_, ok := catalog[key]
	return ok
}

// Keys returns every defined message key. Intended for coverage tests.
func Keys() []Key {
	keys := make([]Key, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	return keys
}
