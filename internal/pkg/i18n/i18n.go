// Package i18n holds the fixed message set of the order wizard and resolves
// which locale a caller asked for. Message keys are the English texts.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// SpanishMX is the default locale.
	SpanishMX = language.MustParse("es-MX")

	// English renders message keys unchanged.
	English = language.English

	supported = []language.Tag{SpanishMX, English}
	matcher   = language.NewMatcher(supported)
)

var spanishMessages = map[string]string{
	"Required":      "Requerido",
	"Invalid email": "Email inválido",
	"Delivery costs will be calculated later.": "Los costos de entrega se calcularán posteriormente.",
	"Next":    "Siguiente",
	"Back":    "Anterior",
	"Submit":  "Enviar",
	"Summary": "Resumen",

	// Terminal wizard.
	"Contact":                     "Contacto",
	"Delivery address":            "Dirección de entrega",
	"Pickup address":              "Dirección de recolección",
	"Full name":                   "Nombre completo",
	"Email":                       "Email",
	"Mobile phone":                "Celular",
	"Street and number":           "Calle y número",
	"Street and number (pickup)":  "Calle y número (recolección)",
	"Colony":                      "Colonia",
	"State":                       "Estado",
	"Postal code":                 "Código Postal",
	"Select a state":              "Selecciona un estado",
	"Download CSV":                "Descargar CSV",
	"Exit":                        "Salir",
	"What next?":                  "¿Qué sigue?",
	"Step %d of %d: %s (%d%%)":    "Paso %d de %d: %s (%d%%)",
	"Saved %s":                    "Guardado %s",
}

func init() {
	mustRegister(message.SetString)
}

// mustRegister stores the catalog through set and panics on the first
// failure, like language.MustParse.
func mustRegister(set func(tag language.Tag, key, msg string) error) {
	for key, msg := range spanishMessages {
		if err := set(SpanishMX, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: register %q for %s: %v", key, SpanishMX, err))
		}
		if err := set(English, key, key); err != nil {
			panic(fmt.Sprintf("i18n: register %q for %s: %v", key, English, err))
		}
	}
}

// Supported returns the locales with a catalog, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Parse maps a language tag string to the closest supported locale.
// The bool is false when value does not parse.
func Parse(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Und, false
	}
	return Match(tag), true
}

// Match returns the supported locale closest to the given preferences, or
// the default locale when none is close.
func Match(preferred ...language.Tag) language.Tag {
	_, idx, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Resolve picks a locale from an explicit lang value first, then from an
// Accept-Language header, and falls back to fallback.
func Resolve(lang, acceptLanguage string, fallback language.Tag) language.Tag {
	if lang != "" {
		if tag, ok := Parse(lang); ok {
			return tag
		}
	}
	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, _, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return Match(tags...)
			}
		}
	}
	return fallback
}

// Translate renders key in locale tag. Unknown keys are returned unchanged.
func Translate(tag language.Tag, key string) string {
	return message.NewPrinter(tag).Sprintf(key)
}

// Translatef renders key in locale tag with fmt-style arguments.
func Translatef(tag language.Tag, key string, args ...any) string {
	return message.NewPrinter(tag).Sprintf(key, args...)
}

// TranslateValues renders every value of messages in locale tag.
func TranslateValues(tag language.Tag, messages map[string]string) map[string]string {
	p := message.NewPrinter(tag)
	out := make(map[string]string, len(messages))
	for k, key := range messages {
		out[k] = p.Sprintf(key)
	}
	return out
}
