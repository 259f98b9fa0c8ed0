package simplify

// merge.go combines simplified trees that were reached by different paths to the same place

// Merge adds b into a (modifying a) and returns a.
// The Fields of b are added to those of a, replacing any with the same response key,
// (so children are not merged at this level). Args are never merged since they belong to a
// single selection. Any other property set in b overwrites the one in a.
func Merge(a, b *Node) *Node {
	if b == nil {
		return a
	}
	if b.Key != "" {
		a.Key = b.Key
	}
	switch {
	case a.Fields == nil:
		a.Fields = b.Fields
	case b.Fields != nil:
		for key, child := range b.Fields {
			a.Fields[key] = child
		}
	}
	return a
}
