package domain

// JobSuggestion is one proposed print job returned by the suggestion
// collaborator: a description, recommended specs and a per-unit rate.
type JobSuggestion struct {
	Description    string  `json:"description"`
	SuggestedSpecs string  `json:"suggestedSpecs"`
	SuggestedRate  float64 `json:"suggestedRate"`
}
