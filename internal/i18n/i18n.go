// Package i18n provides the translated UI strings. Bundles are compiled in
// via go:embed so the binary is self-contained; Spanish is the default
// language with English as the alternative.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

// Default is the language used when nothing is saved.
const Default = "es"

// Supported lists the available languages.
var Supported = []string{"es", "en"}

// Bundle resolves message keys for one active language, falling back to
// the default language and finally to the raw key itself, so a missing
// translation never breaks a render.
type Bundle struct {
	lang     string
	messages map[string]any
	fallback map[string]any
}

// Load builds a bundle for the given language. Unknown languages fall back
// to the default.
func Load(lang string) (*Bundle, error) {
	if !IsSupported(lang) {
		lang = Default
	}
	messages, err := loadLocale(lang)
	if err != nil {
		return nil, err
	}
	b := &Bundle{lang: lang, messages: messages}
	if lang != Default {
		if b.fallback, err = loadLocale(Default); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// MustLoad is Load for package setup paths where the embedded bundles are
// known to be well-formed.
func MustLoad(lang string) *Bundle {
	b, err := Load(lang)
	if err != nil {
		panic(err)
	}
	return b
}

// IsSupported reports whether lang has a bundle.
func IsSupported(lang string) bool {
	for _, s := range Supported {
		if s == lang {
			return true
		}
	}
	return false
}

// Language returns the bundle's active language.
func (b *Bundle) Language() string {
	return b.lang
}

// T resolves a dot-separated key ("tasks.title") and substitutes {param}
// placeholders from params. An unknown key is returned verbatim.
func (b *Bundle) T(key string, params ...map[string]any) string {
	msg, ok := lookup(b.messages, key)
	if !ok {
		msg, ok = lookup(b.fallback, key)
	}
	if !ok {
		return key
	}
	for _, set := range params {
		for name, value := range set {
			msg = strings.ReplaceAll(msg, "{"+name+"}", fmt.Sprint(value))
		}
	}
	return msg
}

func loadLocale(lang string) (map[string]any, error) {
	data, err := localeFS.ReadFile("locales/" + lang + ".json")
	if err != nil {
		return nil, fmt.Errorf("reading locale %s: %w", lang, err)
	}
	var messages map[string]any
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parsing locale %s: %w", lang, err)
	}
	return messages, nil
}

func lookup(messages map[string]any, key string) (string, bool) {
	if messages == nil {
		return "", false
	}
	parts := strings.Split(key, ".")
	current := any(messages)
	for _, part := range parts {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		if current, ok = node[part]; !ok {
			return "", false
		}
	}
	msg, ok := current.(string)
	return msg, ok
}
