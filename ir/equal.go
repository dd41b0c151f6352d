package ir

// Equal reports deep equality of two trees. Object fields must match
// in name, value and order: two documents that differ only in field
// order encode differently, so they are not equal here. Numbers with a
// parsed value compare numerically, otherwise by source text.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return numEqual(a, b)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i] != b.Fields[i] {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func numEqual(a, b *Node) bool {
	switch {
	case a.Int64 != nil && b.Int64 != nil:
		return *a.Int64 == *b.Int64
	case a.Float64 != nil && b.Float64 != nil:
		return *a.Float64 == *b.Float64
	case a.Int64 != nil && b.Float64 != nil:
		return float64(*a.Int64) == *b.Float64
	case a.Float64 != nil && b.Int64 != nil:
		return *a.Float64 == float64(*b.Int64)
	}
	return a.Number == b.Number
}
