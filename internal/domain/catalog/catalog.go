package catalog

import (
	"errors"
	"fmt"
	"strings"

	"pet-explorer/internal/platform/clock"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrPetNotFound     = errors.New("pet not found")
)

// Catalog es la data de referencia: solo lectura durante toda la vida del proceso.
type Catalog struct {
	order  []Category
	pets   map[Category][]Pet
	labels map[Category]string
	byID   map[string]Pet
	clock  clock.Clock
}

// New valida la tabla y arma los índices. Falla si:
// - una categoría no tiene label o no tiene pets
// - un ID se repite en todo el catálogo
// - la back-reference de un pet no coincide con su categoría
func New(order []Category, pets map[Category][]Pet, labels map[Category]string, clk clock.Clock) (*Catalog, error) {
	if len(order) == 0 {
		return nil, errors.New("catalog: no categories")
	}
	if clk == nil {
		clk = clock.System{}
	}

	c := &Catalog{
		order:  make([]Category, 0, len(order)),
		pets:   make(map[Category][]Pet, len(order)),
		labels: make(map[Category]string, len(order)),
		byID:   map[string]Pet{},
		clock:  clk,
	}

	seenCategory := map[Category]bool{}
	for _, cat := range order {
		if strings.TrimSpace(string(cat)) == "" {
			return nil, errors.New("catalog: empty category")
		}
		if seenCategory[cat] {
			return nil, fmt.Errorf("catalog: duplicate category %q", cat)
		}
		seenCategory[cat] = true

		label := strings.TrimSpace(labels[cat])
		if label == "" {
			return nil, fmt.Errorf("catalog: missing label for %q", cat)
		}

		list := pets[cat]
		if len(list) == 0 {
			return nil, fmt.Errorf("catalog: category %q has no pets", cat)
		}

		out := make([]Pet, 0, len(list))
		for i, p := range list {
			if strings.TrimSpace(p.ID) == "" {
				return nil, fmt.Errorf("catalog: missing id at %s[%d]", cat, i)
			}
			if p.Category != cat {
				return nil, fmt.Errorf("catalog: pet %q points to %q, listed under %q", p.ID, p.Category, cat)
			}
			if _, dup := c.byID[p.ID]; dup {
				return nil, fmt.Errorf("catalog: duplicate pet id %q", p.ID)
			}
			c.byID[p.ID] = p
			out = append(out, p)
		}

		c.order = append(c.order, cat)
		c.pets[cat] = out
		c.labels[cat] = label
	}

	for cat := range pets {
		if !seenCategory[cat] {
			return nil, fmt.Errorf("catalog: pets listed under unordered category %q", cat)
		}
	}

	return c, nil
}

// Default arma el catálogo compilado. Entra en pánico si la tabla es inválida:
// es un error de build, no de runtime.
func Default(clk clock.Clock) *Catalog {
	order, pets, labels := Table()
	c, err := New(order, pets, labels, clk)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCategory valida un valor crudo (path param, flag, etc).
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := categoryLabels[c]; !ok {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) RecordsIn(cat Category) ([]Pet, error) {
	list, ok := c.pets[cat]
	if !ok {
		return nil, ErrInvalidCategory
	}
	out := make([]Pet, len(list))
	copy(out, list)
	return out, nil
}

// DisplayLabel devuelve la key de traducción de la categoría (nunca el texto localizado).
func (c *Catalog) DisplayLabel(cat Category) (string, error) {
	l, ok := c.labels[cat]
	if !ok {
		return "", ErrInvalidCategory
	}
	return l, nil
}

// Age usa el año del clock inyectado; se recalcula en cada llamada.
func (c *Catalog) Age(p Pet) int {
	return p.AgeAt(c.clock.CurrentYear())
}

func (c *Catalog) CurrentYear() int {
	return c.clock.CurrentYear()
}

func (c *Catalog) Get(id string) (Pet, error) {
	p, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Pet{}, ErrPetNotFound
	}
	return p, nil
}

func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[strings.TrimSpace(id)]
	return ok
}

// All devuelve todos los pets en orden de despliegue (categoría, luego posición).
func (c *Catalog) All() []Pet {
	out := make([]Pet, 0, len(c.byID))
	for _, cat := range c.order {
		out = append(out, c.pets[cat]...)
	}
	return out
}
