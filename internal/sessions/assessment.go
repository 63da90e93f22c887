package sessions

import (
	"fmt"
	"sort"
)

// Traits rated in the psychometric self assessment. Each is scored 1 to 10.
var ValidTraits = []string{
	"analytical",
	"creativity",
	"communication",
	"problem_solving",
	"adaptability",
	"leadership",
}

const (
	TraitScoreMin = 1
	TraitScoreMax = 10
)

var validTraitSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(ValidTraits))
	for _, t := range ValidTraits {
		set[t] = struct{}{}
	}
	return set
}()

// ParseAssessment validates a submitted trait map. Every valid trait must be
// present, no unknown traits are accepted, and each score must fall within
// [TraitScoreMin, TraitScoreMax].
func ParseAssessment(raw map[string]int) (map[string]int, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: assessment is required", ErrInvalidInput)
	}
	for trait, score := range raw {
		if _, ok := validTraitSet[trait]; !ok {
			return nil, fmt.Errorf("%w: unknown trait %q", ErrInvalidInput, trait)
		}
		if score < TraitScoreMin || score > TraitScoreMax {
			return nil, fmt.Errorf("%w: trait %q score %d must be between %d and %d",
				ErrInvalidInput, trait, score, TraitScoreMin, TraitScoreMax)
		}
	}
	var missing []string
	for _, trait := range ValidTraits {
		if _, ok := raw[trait]; !ok {
			missing = append(missing, trait)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: missing traits %v", ErrInvalidInput, missing)
	}
	out := make(map[string]int, len(raw))
	for trait, score := range raw {
		out[trait] = score
	}
	return out, nil
}
