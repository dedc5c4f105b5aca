package analysis

// InsightSuggestion is one insight the model produced. Type is one of
// "positive", "opportunity" or "info".
type InsightSuggestion struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Performer struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type TopPerformers struct {
	Queries []Performer `json:"queries"`
	Pages   []Performer `json:"pages"`
}

// Analysis is the structured result of analyzing a search data snapshot.
type Analysis struct {
	Summary         string              `json:"summary"`
	Insights        []InsightSuggestion `json:"insights"`
	TopPerformers   TopPerformers       `json:"topPerformers"`
	Recommendations []string            `json:"recommendations"`
}
