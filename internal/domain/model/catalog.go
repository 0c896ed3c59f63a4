package model

// CatalogStats summarizes the catalog for the stats grid.
type CatalogStats struct {
	Patterns     int `json:"patterns"`
	Problems     int `json:"problems"`
	Difficulties int `json:"difficulties"`
}

// Preview is the head of the catalog plus how many records it hides.
type Preview struct {
	Problems  []Problem `json:"problems"`
	Remaining int       `json:"remaining"`
}

// ComputeStats counts distinct patterns and difficulty tiers.
func ComputeStats(problems []Problem) CatalogStats {
	patterns := make(map[string]struct{})
	tiers := make(map[Difficulty]struct{})
	for _, p := range problems {
		patterns[p.Pattern] = struct{}{}
		tiers[p.Difficulty] = struct{}{}
	}
	return CatalogStats{
		Patterns:     len(patterns),
		Problems:     len(problems),
		Difficulties: len(tiers),
	}
}

// BuildPreview returns a copy of the first limit problems.
func BuildPreview(problems []Problem, limit int) Preview {
	if limit < 0 {
		limit = 0
	}
	if limit > len(problems) {
		limit = len(problems)
	}
	head := make([]Problem, limit)
	copy(head, problems[:limit])
	return Preview{Problems: head, Remaining: len(problems) - limit}
}
