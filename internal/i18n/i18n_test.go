//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator_IsShared(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name   string
		key    string
		locale string
		want   string
	}{
		{"english", ErrKeyLocationNotFound, "en", "Storage location not found"},
		{"portuguese", ErrKeyInvalidRequest, "pt", "Requisição inválida"},
		{"dutch", ErrKeyCatalogReadOnly, "nl", "De catalogus is alleen-lezen"},
		{"empty locale", ErrKeyInvalidRequest, "", "Invalid request"},
		{"unsupported locale", ErrKeyOracleFailure, "fr", "Placement computation failed"},
		{"unknown key", "error.unknown", "nl", "error.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestMessages_EveryLocaleIsComplete(t *testing.T) {
	for locale, msgs := range defaultMessages {
		for key := range defaultMessages[DefaultLocale] {
			assert.NotEmpty(t, msgs[key], "%s is missing %s", locale, key)
		}
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", DefaultLocale},
		{"exact", "nl", "nl"},
		{"region is ignored", "pt-BR", "pt"},
		{"first supported wins", "fr-FR, nl;q=0.8, pt;q=0.9", "nl"},
		{"case insensitive", "NL-be", "nl"},
		{"nothing supported", "de, fr", DefaultLocale},
		{"wildcard", "*", DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.want, GetLocale(c))
		})
	}
}

func TestMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set(AcceptLanguageHeader, "pt-PT")

	assert.Equal(t, GetTranslator().Translate(SuccessKeyOptimized, "pt"), Message(c, SuccessKeyOptimized))
	assert.NotEqual(t, SuccessKeyOptimized, Message(c, SuccessKeyOptimized))
}
