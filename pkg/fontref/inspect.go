package fontref

// Conversion is the outcome of resolving a reference into one kind
type Conversion struct {
	Target Kind   `json:"target" yaml:"target"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Inspection lists a reference's kind and its value in every other kind
type Inspection struct {
	Input       string       `json:"input" yaml:"input"`
	Kind        Kind         `json:"kind" yaml:"kind"`
	Conversions []Conversion `json:"conversions" yaml:"conversions"`
}

// Inspect classifies raw and attempts every conversion. Failed conversions
// are recorded rather than returned.
func (r *Resolver) Inspect(raw string) Inspection {
	in := Inspection{Input: raw, Kind: r.Kind(raw)}
	for _, target := range Kinds {
		c := Conversion{Target: target}
		value, err := r.Resolve(raw, target)
		if err != nil {
			c.Error = err.Error()
		} else {
			c.Value = value
		}
		in.Conversions = append(in.Conversions, c)
	}
	return in
}
