package assessment

type constructor func(name string, score float64) (Assessment, error)

// constructors maps every kind to the constructor of its variant.
// Adding a variant means adding it to AllKinds and here.
var constructors = map[Kind]constructor{
	KindMultipleChoice: wrap(NewMultipleChoice),
	KindTechnical:      wrap(NewTechnical),
	KindPresentation:   wrap(NewPresentation),
}

// wrap adapts a variant constructor to the common signature without
// leaking a typed nil on error.
func wrap[T Assessment](fn func(string, float64) (T, error)) constructor {
	return func(name string, score float64) (Assessment, error) {
		a, err := fn(name, score)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

// New creates the assessment variant named by tag.
// It returns *InvalidTypeError for an unknown tag and *ValidationError for
// a score out of range.
func New(tag, name string, score float64) (Assessment, error) {
	k, err := KindFromString(tag)
	if err != nil {
		return nil, err
	}
	return constructors[k](name, score)
}
