package catalog

// Category define las categorías del catálogo.
// @Enum birds, cats, chameleons, cows, dogs, monkeys, penguins, pigs, rats, snakes, squirrels
type Category string

const (
	CategoryBirds      Category = "birds"
	CategoryCats       Category = "cats"
	CategoryChameleons Category = "chameleons"
	CategoryCows       Category = "cows"
	CategoryDogs       Category = "dogs"
	CategoryMonkeys    Category = "monkeys"
	CategoryPenguins   Category = "penguins"
	CategoryPigs       Category = "pigs"
	CategoryRats       Category = "rats"
	CategorySnakes     Category = "snakes"
	CategorySquirrels  Category = "squirrels"
)

func (c Category) String() string { return string(c) }

// Pet representa una mascota adoptable del catálogo.
type Pet struct {
	ID        string // estable: "dog1", "cat3", ...
	Name      string
	ImageRef  string // key opaca para el asset store
	BirthYear int

	Category Category // back-reference, no ownership
}

// AgeAt calcula la edad para un año dado. No se guarda: depende del año actual.
func (p Pet) AgeAt(year int) int {
	return year - p.BirthYear
}
