package eggorm

// run.go provides the MustSchema function for quickly generating a GraphQL schema

// MustSchema creates a GraphQL schema for the models, panicking on error.
// Each parameter is a Model or a Go struct (or pointer to struct) from which a Model is made
// using ModelOf. Options (as used with AttributeFields) may be mixed in with the models.
func MustSchema(params ...any) string {
	h := New()
	var opts []func(*options)
	for _, p := range params {
		switch p := p.(type) {
		case Model:
			h.AddModel(p)
		case func(*options):
			opts = append(opts, p)
		default:
			h.AddModel(MustModelOf(p))
		}
	}
	h.SetOptions(opts...)
	s, err := h.GetSchema()
	if err != nil {
		panic(err)
	}
	return s
}
