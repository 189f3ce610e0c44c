// Package i18n translates user-facing messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is used when the client expresses no supported preference.
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator looks up messages by key and locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator with the built-in catalog.
func NewTranslator() *Translator {
	return &Translator{messages: catalog}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to DefaultLocale
// and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a catalog.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language from Accept-Language, in header order.
// Quality values are not weighed.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	t := GetTranslator()
	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if idx := strings.IndexByte(lang, '-'); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if t.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

var catalog = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyNotFound:           "Not found",
		ErrKeyTripNotFound:       "Trip not found",
		ErrKeyInvalidTripID:      "Invalid trip id",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyConflict:           "Conflict",
		ErrKeyTimeout:            "Request timed out",
		ErrKeyUnavailable:        "Storage is temporarily unavailable",
		ErrKeyLimitExceeded:      "Request exceeds the allowed size",

		ErrKeyValidationName:        "name: is required",
		ErrKeyValidationMinCalories: "minCalories: must be a non-negative integer",
		ErrKeyValidationMaxWeight:   "maxWeight: must be a non-negative integer",
		ErrKeyValidationItems:       "items: each item needs a name and non-negative weight and calories",

		SuccessKeyTripCreated: "Trip created",
		SuccessKeyTripDeleted: "Trip deleted",
	},
	"es": {
		ErrKeyInvalidRequest:     "Solicitud inválida",
		ErrKeyInvalidRequestBody: "Cuerpo de la solicitud inválido",
		ErrKeyInternalError:      "Ocurrió un error inesperado",
		ErrKeyNotFound:           "No encontrado",
		ErrKeyTripNotFound:       "Viaje no encontrado",
		ErrKeyInvalidTripID:      "Identificador de viaje inválido",
		ErrKeyRateLimitExceeded:  "Demasiadas solicitudes, inténtelo más tarde",
		ErrKeyConflict:           "Conflicto",
		ErrKeyTimeout:            "La solicitud excedió el tiempo de espera",
		ErrKeyUnavailable:        "El almacenamiento no está disponible temporalmente",
		ErrKeyLimitExceeded:      "La solicitud excede el tamaño permitido",

		ErrKeyValidationName:        "name: es obligatorio",
		ErrKeyValidationMinCalories: "minCalories: debe ser un entero no negativo",
		ErrKeyValidationMaxWeight:   "maxWeight: debe ser un entero no negativo",
		ErrKeyValidationItems:       "items: cada elemento necesita nombre, peso y calorías no negativos",

		SuccessKeyTripCreated: "Viaje creado",
		SuccessKeyTripDeleted: "Viaje eliminado",
	},
}
