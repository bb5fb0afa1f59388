package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Keys de UI. Las labels de categorías vienen del catálogo y se traducen igual.
const (
	KeyTitle     = "Pet Explorer"
	KeyAvailable = "Available pets"
	KeyAdopted   = "Adopted pets"
	KeyYearsOld  = "%d years old"
	KeyYourPet   = "Your pet: %s"
)

// Supported: el primero es el default cuando no hay match.
var Supported = []language.Tag{language.English, language.Spanish}

var translations = map[language.Tag]map[string]string{
	language.Spanish: {
		KeyTitle:     "Explorador de mascotas",
		KeyAvailable: "Mascotas disponibles",
		KeyAdopted:   "Mascotas adoptadas",
		KeyYearsOld:  "%d años",
		KeyYourPet:   "Tu mascota: %s",

		"Birds":      "Aves",
		"Cats":       "Gatos",
		"Chameleons": "Camaleones",
		"Cows":       "Vacas",
		"Dogs":       "Perros",
		"Monkeys":    "Monos",
		"Penguins":   "Pingüinos",
		"Pigs":       "Cerdos",
		"Rats":       "Ratas",
		"Snakes":     "Serpientes",
		"Squirrels":  "Ardillas",
	},
}

// Localizer resuelve keys a texto según idioma. El dominio nunca guarda texto localizado.
type Localizer struct {
	cat     *catalog.Builder
	matcher language.Matcher
}

func New() (*Localizer, error) {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("i18n: set %s %q: %w", tag, key, err)
			}
		}
	}
	return &Localizer{
		cat:     b,
		matcher: language.NewMatcher(Supported),
	}, nil
}

// Match negocia el idioma a partir de valores tipo Accept-Language ("es-MX,es;q=0.9").
func (l *Localizer) Match(accept ...string) language.Tag {
	clean := make([]string, 0, len(accept))
	for _, a := range accept {
		if strings.TrimSpace(a) != "" {
			clean = append(clean, a)
		}
	}
	if len(clean) == 0 {
		return Supported[0]
	}
	_, idx := language.MatchStrings(l.matcher, clean...)
	return Supported[idx]
}

func (l *Localizer) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(l.cat))
}

// PrinterFor combina Match + Printer.
func (l *Localizer) PrinterFor(accept ...string) *message.Printer {
	return l.Printer(l.Match(accept...))
}
