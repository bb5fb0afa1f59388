package catalog

// categoryOrder es el orden de despliegue. Estable entre llamadas y procesos.
var categoryOrder = []Category{
	CategoryBirds,
	CategoryCats,
	CategoryChameleons,
	CategoryCows,
	CategoryDogs,
	CategoryMonkeys,
	CategoryPenguins,
	CategoryPigs,
	CategoryRats,
	CategorySnakes,
	CategorySquirrels,
}

// categoryLabels son las keys de traducción de cada categoría (texto base en inglés).
var categoryLabels = map[Category]string{
	CategoryBirds:      "Birds",
	CategoryCats:       "Cats",
	CategoryChameleons: "Chameleons",
	CategoryCows:       "Cows",
	CategoryDogs:       "Dogs",
	CategoryMonkeys:    "Monkeys",
	CategoryPenguins:   "Penguins",
	CategoryPigs:       "Pigs",
	CategoryRats:       "Rats",
	CategorySnakes:     "Snakes",
	CategorySquirrels:  "Squirrels",
}

type seed struct {
	id        string
	name      string
	birthYear int
}

// seeds: el orden dentro de cada categoría es el orden de despliegue.
// ImageRef coincide con el ID.
var seeds = map[Category][]seed{
	CategoryBirds: {
		{"bird1", "Happy", 2017},
		{"bird2", "Swifty", 2018},
		{"bird3", "Speedy", 2018},
	},
	CategoryCats: {
		{"cat1", "Max", 2015},
		{"cat2", "Jake", 2018},
		{"cat3", "Daisy", 2012},
		{"cat4", "Sunny", 2008},
		{"cat5", "Oscar", 2017},
	},
	CategoryChameleons: {
		{"chameleon1", "Zoe", 2015},
	},
	CategoryCows: {
		{"cow1", "Betty", 2016},
		{"cow2", "Rosie", 2013},
	},
	CategoryDogs: {
		{"dog1", "Buddy", 2018},
		{"dog2", "Molly", 2014},
		{"dog3", "Bella", 2009},
		{"dog4", "Dixie", 2018},
		{"dog5", "Freddy", 2012},
		{"dog6", "Lucky", 2016},
		{"dog7", "Snoopy", 2015},
		{"dog8", "Joker", 2018},
		{"dog9", "Diego", 2018},
		{"dog10", "Bruno", 2016},
	},
	CategoryMonkeys: {
		{"monkey1", "Turbo", 2015},
	},
	CategoryPenguins: {
		{"penguin1", "Helen", 2017},
		{"penguin2", "Fred", 2014},
	},
	CategoryPigs: {
		{"pig1", "Piggy", 2015},
	},
	CategoryRats: {
		{"rat1", "Cutie", 2018},
	},
	CategorySnakes: {
		{"snake1", "Worm", 2013},
		{"snake2", "Noodles", 2018},
		{"snake3", "Slider", 2017},
	},
	CategorySquirrels: {
		{"squirrel1", "Chippy", 2017},
	},
}

// Table construye la tabla compilada (categoría -> pets) lista para New.
func Table() ([]Category, map[Category][]Pet, map[Category]string) {
	order := make([]Category, len(categoryOrder))
	copy(order, categoryOrder)

	pets := make(map[Category][]Pet, len(seeds))
	for c, list := range seeds {
		out := make([]Pet, 0, len(list))
		for _, s := range list {
			out = append(out, Pet{
				ID:        s.id,
				Name:      s.name,
				ImageRef:  s.id,
				BirthYear: s.birthYear,
				Category:  c,
			})
		}
		pets[c] = out
	}

	labels := make(map[Category]string, len(categoryLabels))
	for c, l := range categoryLabels {
		labels[c] = l
	}
	return order, pets, labels
}
