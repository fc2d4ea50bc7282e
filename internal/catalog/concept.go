package catalog

// Category represents a math content category.
type Category string

const (
	CategoryArithmetic Category = "arithmetic"
	CategoryAlgebra    Category = "algebra"
	CategoryGeometry   Category = "geometry"
	CategoryData       Category = "data-and-statistics"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryArithmetic,
		CategoryAlgebra,
		CategoryGeometry,
		CategoryData,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryArithmetic:
		return "Arithmetic"
	case CategoryAlgebra:
		return "Algebra"
	case CategoryGeometry:
		return "Geometry"
	case CategoryData:
		return "Data & Statistics"
	default:
		return string(c)
	}
}

// Difficulty is the coarse difficulty band of a concept.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Concept represents a single detectable math skill in the catalog.
type Concept struct {
	ID            string
	Name          string
	Category      Category
	Difficulty    Difficulty
	ProblemKind   string   // default kind of practice problem, e.g. "equation"
	Aliases       []string // lowercase phrases matched against goal text
	Patterns      []string // regex sources matched against problem text
	Prerequisites []string
	Related       []string // directed; Related() applies the symmetric closure
}
