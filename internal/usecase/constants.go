package usecase

const (
	// DefaultFuzzyMatchDistance is the maximum levenshtein distance at which
	// a transaction description is considered a match for a classified one.
	DefaultFuzzyMatchDistance = 3
)
