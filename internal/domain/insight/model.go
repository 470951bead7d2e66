package insight

// Category is the dominant theme detected across notes.
type Category string

const (
	CategoryProductivity Category = "productivity"
	CategoryCreativity   Category = "creativity"
	CategoryMotivation   Category = "motivation"
	CategoryMindfulness  Category = "mindfulness"
	CategoryGeneral      Category = "general"
)

// Insight is a themed tagline and quote for the note collection.
type Insight struct {
	Tagline  string   `json:"tagline"`
	Quote    string   `json:"quote"`
	Category Category `json:"category"`
}

// Analysis is the result of keyword scoring.
type Analysis struct {
	Category Category `json:"category"`
	Keywords []string `json:"keywords"`
}

// Stat is a labelled summary figure.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
