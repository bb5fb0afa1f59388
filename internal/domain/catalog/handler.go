package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	"pet-explorer/internal/platform/i18n"
	"pet-explorer/internal/ports/assets"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/message"
)

func RegisterRoutes(r chi.Router, c *Catalog, loc *i18n.Localizer, res assets.Resolver) {
	r.Get("/categories", listCategoriesHandler(c, loc))
	r.Get("/categories/{category}/pets", listPetsHandler(c, loc, res))
	r.Get("/pets/{petID}", getPetHandler(c, loc, res))
}

// categoryResponse es una categoría con su label ya localizada.
type categoryResponse struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Count    int      `json:"count"`
}

// petResponse representa una mascota del catálogo. age se calcula en cada request.
type petResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	CategoryLabel string   `json:"category_label"`
	ImageRef      string   `json:"image_ref"`
	ImageURL      string   `json:"image_url,omitempty"`
	BirthYear     int      `json:"birth_year"`
	Age           int      `json:"age"`
	AgeLabel      string   `json:"age_label"`
}

// listCategoriesHandler godoc
// @Summary Listar categorías
// @Description Devuelve las categorías en orden fijo de despliegue. La label se localiza según `Accept-Language` (en, es).
// @Tags catalog
// @Produce json
// @Param Accept-Language header string false "Idioma preferido (ej: es-MX)"
// @Success 200 {array} categoryResponse
// @Router /categories [get]
func listCategoriesHandler(c *Catalog, loc *i18n.Localizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := loc.PrinterFor(r.Header.Get("Accept-Language"))

		cats := c.Categories()
		out := make([]categoryResponse, 0, len(cats))
		for _, cat := range cats {
			label, _ := c.DisplayLabel(cat)
			pets, _ := c.RecordsIn(cat)
			out = append(out, categoryResponse{
				Category: cat,
				Label:    p.Sprintf(label),
				Count:    len(pets),
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas de una categoría
// @Description Devuelve las mascotas de la categoría en orden de despliegue, con edad calculada al año actual.
// @Tags catalog
// @Produce json
// @Param Accept-Language header string false "Idioma preferido (ej: es-MX)"
// @Param category path string true "Categoría" Enums(birds, cats, chameleons, cows, dogs, monkeys, penguins, pigs, rats, snakes, squirrels)
// @Success 200 {array} petResponse
// @Failure 404 {string} string "invalid category"
// @Router /categories/{category}/pets [get]
func listPetsHandler(c *Catalog, loc *i18n.Localizer, res assets.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := ParseCategory(chi.URLParam(r, "category"))
		if err != nil {
			http.Error(w, "invalid category", http.StatusNotFound)
			return
		}
		pets, err := c.RecordsIn(cat)
		if err != nil {
			http.Error(w, "invalid category", http.StatusNotFound)
			return
		}

		p := loc.PrinterFor(r.Header.Get("Accept-Language"))
		out := make([]petResponse, 0, len(pets))
		for _, pet := range pets {
			out = append(out, toPetResponse(r.Context(), c, p, res, pet))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener una mascota
// @Tags catalog
// @Produce json
// @Param Accept-Language header string false "Idioma preferido (ej: es-MX)"
// @Param petID path string true "ID de la mascota (ej: dog1)"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(c *Catalog, loc *i18n.Localizer, res assets.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet, err := c.Get(chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		p := loc.PrinterFor(r.Header.Get("Accept-Language"))
		writeJSON(w, http.StatusOK, toPetResponse(r.Context(), c, p, res, pet))
	}
}

func toPetResponse(ctx context.Context, c *Catalog, p *message.Printer, res assets.Resolver, pet Pet) petResponse {
	label, _ := c.DisplayLabel(pet.Category)
	age := c.Age(pet)

	out := petResponse{
		ID:            pet.ID,
		Name:          pet.Name,
		Category:      pet.Category,
		CategoryLabel: p.Sprintf(label),
		ImageRef:      pet.ImageRef,
		BirthYear:     pet.BirthYear,
		Age:           age,
		AgeLabel:      p.Sprintf(i18n.KeyYearsOld, age),
	}
	if res != nil {
		// la imagen es opcional: si el asset store falla, el pet igual se devuelve
		if u, err := res.URL(ctx, pet.ImageRef); err == nil {
			out.ImageURL = u
		}
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
