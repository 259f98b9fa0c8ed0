package where

// replace.go has the (deep) replacement of operator names in where conditions

// Replace returns a copy of w with every key that is a name in table replaced by its operator.
// Keys are replaced at every level, including in objects that are elements of lists.
// The input is not modified.
func Replace(w map[string]any, table Table) map[string]any {
	if w == nil {
		return nil
	}
	r := make(map[string]any, len(w))
	for key, value := range w {
		target := key
		if op, ok := table[key]; ok {
			target = string(op)
		}
		r[target] = replaceValue(value, table)
	}
	return r
}

func replaceValue(value any, table Table) any {
	switch value := value.(type) {
	case map[string]any:
		return Replace(value, table)
	case []any:
		list := make([]any, len(value))
		for i, elt := range value {
			list[i] = replaceValue(elt, table)
		}
		return list
	}
	return value
}
