package assessment

// Kind identifies an assessment variant. Its value is the tag used by
// quizzes and the factory.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindTechnical      Kind = "technical"
	KindPresentation   Kind = "presentation"
)

// Fixed weightings applied to a raw score.
const (
	WeightMultipleChoice = 0.7
	WeightTechnical      = 1.0
	WeightPresentation   = 0.6
)

// AllKinds returns all assessment kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindMultipleChoice, KindTechnical, KindPresentation}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindMultipleChoice:
		return "Multiple Choice"
	case KindTechnical:
		return "Technical"
	case KindPresentation:
		return "Presentation"
	default:
		return string(k)
	}
}

// Weight returns the multiplier the kind applies to a raw score.
// Unknown kinds weigh nothing.
func (k Kind) Weight() float64 {
	switch k {
	case KindMultipleChoice:
		return WeightMultipleChoice
	case KindTechnical:
		return WeightTechnical
	case KindPresentation:
		return WeightPresentation
	default:
		return 0
	}
}

// KindFromString resolves a type tag to its Kind. Tags are matched exactly.
func KindFromString(tag string) (Kind, error) {
	k := Kind(tag)
	if _, ok := constructors[k]; !ok {
		return "", &InvalidTypeError{Tag: tag}
	}
	return k, nil
}
