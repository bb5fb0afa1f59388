package explorer

import (
	"context"

	"pet-explorer/internal/domain/adoptions"
	"pet-explorer/internal/domain/catalog"
	"pet-explorer/internal/platform/i18n"
	"pet-explorer/internal/ports/assets"

	"golang.org/x/text/message"
)

// View es la lista de dos secciones: disponibles (agrupadas por categoría) y adoptadas.
type View struct {
	Title          string  `json:"title"`
	AvailableTitle string  `json:"available_title"`
	Available      []Group `json:"available"`
	AdoptedTitle   string  `json:"adopted_title"`
	Adopted        []Item  `json:"adopted"`
}

type Group struct {
	Category catalog.Category `json:"category"`
	Label    string           `json:"label"`
	Items    []Item           `json:"items"`
}

type Item struct {
	PetID    string `json:"pet_id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"` // "3 years old"
	ImageURL string `json:"image_url,omitempty"`
	Adopted  bool   `json:"adopted"`
}

// AdoptionSource: solo lectura del registry de la sesión.
type AdoptionSource interface {
	Adoptions(ctx context.Context) ([]adoptions.Adoption, error)
}

// Build relee catálogo y registry en cada llamada (modelo pull, sin callbacks).
// La sección de adoptados respeta el orden de adopción.
func Build(ctx context.Context, cat *catalog.Catalog, src AdoptionSource, p *message.Printer, res assets.Resolver) (View, error) {
	entries, err := src.Adoptions(ctx)
	if err != nil {
		return View{}, err
	}
	adopted := make(map[string]bool, len(entries))
	for _, a := range entries {
		adopted[a.PetID] = true
	}

	v := View{
		Title:          p.Sprintf(i18n.KeyTitle),
		AvailableTitle: p.Sprintf(i18n.KeyAvailable),
		AdoptedTitle:   p.Sprintf(i18n.KeyAdopted),
		Available:      make([]Group, 0, len(cat.Categories())),
		Adopted:        make([]Item, 0, len(entries)),
	}

	for _, c := range cat.Categories() {
		label, err := cat.DisplayLabel(c)
		if err != nil {
			return View{}, err
		}
		pets, err := cat.RecordsIn(c)
		if err != nil {
			return View{}, err
		}

		g := Group{Category: c, Label: p.Sprintf(label), Items: make([]Item, 0, len(pets))}
		for _, pet := range pets {
			it := toItem(ctx, cat, p, res, pet)
			it.Adopted = adopted[pet.ID]
			g.Items = append(g.Items, it)
		}
		v.Available = append(v.Available, g)
	}

	for _, a := range entries {
		pet, err := cat.Get(a.PetID)
		if err != nil {
			// una adopción persistida que ya no existe en el catálogo no se muestra
			continue
		}
		it := toItem(ctx, cat, p, res, pet)
		it.Title = p.Sprintf(i18n.KeyYourPet, pet.Name)
		it.Adopted = true
		v.Adopted = append(v.Adopted, it)
	}

	return v, nil
}

func toItem(ctx context.Context, cat *catalog.Catalog, p *message.Printer, res assets.Resolver, pet catalog.Pet) Item {
	it := Item{
		PetID:    pet.ID,
		Title:    pet.Name,
		Subtitle: p.Sprintf(i18n.KeyYearsOld, cat.Age(pet)),
	}
	if res != nil {
		if u, err := res.URL(ctx, pet.ImageRef); err == nil {
			it.ImageURL = u
		}
	}
	return it
}
