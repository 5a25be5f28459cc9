// Package i18n provides internationalization support for vstoolbox.
//
// Usage:
//
//	i18n.Init("en")                                          // at startup
//	i18n.T("tui.status.refreshed", "History reloaded")       // simple string
//	i18n.Tf("tui.status.launched", "Opened %s", title)       // with fmt args
//	i18n.Tn("tui.feed.count", "{{.Count}} entry", "{{.Count}} entries", n) // plural
package i18n

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LangEnv overrides the configured language.
const LangEnv = "VSTOOLBOX_LANG"

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	active    string
	mu        sync.RWMutex
)

// LangInfo describes one bundled language.
type LangInfo struct {
	Tag         string `json:"tag" yaml:"tag"`
	EnglishName string `json:"english_name" yaml:"english_name"`
	NativeName  string `json:"native_name" yaml:"native_name"`
	Active      bool   `json:"active" yaml:"active"`
}

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, _ := localeFS.ReadDir("locales")
	for _, e := range entries {
		_, _ = b.LoadMessageFileFS(localeFS, "locales/"+e.Name())
	}
	return b
}

// Init initializes the i18n system with the given language tag.
// Falls back to English if the language is not available.
// Safe to call multiple times.
func Init(lang string) {
	mu.Lock()
	defer mu.Unlock()

	bundle = newBundle()
	localizer = i18n.NewLocalizer(bundle, lang, "en")
	active = lang
}

// Active returns the tag passed to the last Init call.
func Active() string {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// T returns the localized string for the given message ID.
// The defaultMsg is used as the English fallback.
func T(id string, defaultMsg string) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l == nil {
		return defaultMsg
	}

	s, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: defaultMsg,
		},
	})
	if err != nil {
		return defaultMsg
	}
	return s
}

// Tf returns the localized string with fmt.Sprintf-style formatting.
func Tf(id string, defaultMsg string, args ...any) string {
	return fmt.Sprintf(T(id, defaultMsg), args...)
}

// Tn returns the localized string with pluralization.
// one/other use go template syntax with {{.Count}}.
func Tn(id string, one string, other string, count int) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	fallback := func() string {
		msg := other
		if count == 1 {
			msg = one
		}
		return strings.ReplaceAll(msg, "{{.Count}}", fmt.Sprint(count))
	}
	if l == nil {
		return fallback()
	}

	s, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			One:   one,
			Other: other,
		},
		PluralCount:  count,
		TemplateData: map[string]int{"Count": count},
	})
	if err != nil {
		return fallback()
	}
	return s
}

// AvailableLanguages lists the bundled languages sorted by tag, marking the
// one matching activeTag.
func AvailableLanguages(activeTag string) []LangInfo {
	mu.RLock()
	b := bundle
	mu.RUnlock()
	if b == nil {
		b = newBundle()
	}

	tags := b.LanguageTags()
	_, idx, conf := language.NewMatcher(tags).Match(language.Make(activeTag))

	var out []LangInfo
	for i, tag := range tags {
		out = append(out, LangInfo{
			Tag:         tag.String(),
			EnglishName: display.English.Tags().Name(tag),
			NativeName:  display.Self.Name(tag),
			Active:      activeTag != "" && conf != language.No && i == idx,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// ResolveLocale determines the active locale from env/config.
// Priority: VSTOOLBOX_LANG > configLang > LC_ALL > LANG > "en"
func ResolveLocale(configLang string) string {
	if v := os.Getenv(LangEnv); v != "" {
		return v
	}
	if configLang != "" {
		return configLang
	}
	if v := os.Getenv("LC_ALL"); v != "" && v != "C" && v != "POSIX" {
		return normalizeLocale(v)
	}
	if v := os.Getenv("LANG"); v != "" && v != "C" && v != "POSIX" {
		return normalizeLocale(v)
	}
	return "en"
}

// normalizeLocale converts POSIX locale format to BCP 47.
// e.g., "zh_CN.UTF-8" -> "zh-CN", "en_US" -> "en-US"
func normalizeLocale(posix string) string {
	if i := strings.IndexAny(posix, ".@"); i >= 0 {
		posix = posix[:i]
	}
	return strings.ReplaceAll(posix, "_", "-")
}
