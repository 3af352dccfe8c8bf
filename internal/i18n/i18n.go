// Package i18n translates user-facing API messages (en, pt, nl).
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is used when the client asks for nothing we support.
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header carrying the language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator maps message keys to locale-specific text.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator over the built-in messages.
func NewTranslator() *Translator {
	return &Translator{messages: defaultMessages}
}

// GetTranslator returns the process-wide translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale. Unknown locales and keys missing from
// a locale fall back to DefaultLocale; an unknown key is returned as is.
func (t *Translator) Translate(key, locale string) string {
	if msgs, ok := t.messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has its own message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language from Accept-Language, in header order,
// ignoring regions ("pt-BR" is "pt"). Quality values are not ranked.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	t := GetTranslator()
	for _, part := range strings.Split(header, ",") {
		lang, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang, _, _ = strings.Cut(lang, "-")
		lang = strings.ToLower(strings.TrimSpace(lang))
		if t.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

// Message translates key for the locale of the request in c.
func Message(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}
