package hydraulics

var correlations = []Correlation{
	hagedornBrown{},
	beggsBrill{},
	dunsRoss{},
	chokshi{},
	orkiszewski{},
	gray{},
	mukherjeeBrill{},
	aziz{},
	hasanKabir{},
	ansari{},
}

// Methods lists the available multiphase correlations in presentation order.
func Methods() []Descriptor {
	out := make([]Descriptor, len(correlations))
	for i, c := range correlations {
		out[i] = c.Descriptor()
	}
	return out
}

// New returns the correlation registered under id.
func New(id string) (Correlation, error) {
	for _, c := range correlations {
		if c.Descriptor().ID == id {
			return c, nil
		}
	}
	return nil, &ValidationError{Field: "method", Reason: "unknown correlation " + id}
}
