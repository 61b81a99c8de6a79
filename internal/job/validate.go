package job

// Validate checks every top-level key of a parsed jobs document against the
// option table. Condition prefixes are stripped before lookup, so a key like
// planet-earth:junit_patterns validates against junit_patterns.
func Validate(doc Mapping) error {
	for _, e := range doc {
		name := realOptionName(e.Key)
		spec, ok := optionTable[name]
		if !ok {
			return &UnknownOptionError{Option: name}
		}
		if got := shapeOf(e.Value); got != spec.shape {
			return &TypeMismatchError{Option: name, Got: got, Expected: spec.shape}
		}
	}
	return nil
}
