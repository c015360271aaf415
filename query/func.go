package query

import "github.com/creachadair/jval/tree"

// Exists returns a selection that reports true if its argument satisfies the
// specified query. The arguments have the same constraints as Path.
func Exists(keys ...any) Selection {
	q := Path(keys...)
	return func(v *tree.Value) bool {
		_, err := q.eval(v)
		return err == nil
	}
}

// Is returns a selection that reports true if its argument has kind k.
func Is(k tree.Kind) Selection {
	return func(v *tree.Value) bool { return v.Is(k) }
}

// IsNot returns a selection that reports true if its argument does not have
// kind k.
func IsNot(k tree.Kind) Selection {
	return func(v *tree.Value) bool { return !v.Is(k) }
}

// Map constructs a mapping from the given function. The resulting mapping
// will return unmodified any value whose kind is not k.
func Map(k tree.Kind, f func(*tree.Value) *tree.Value) Mapping {
	return func(v *tree.Value) *tree.Value {
		if v.Is(k) {
			return f(v)
		}
		return v
	}
}

// Filter constructs a selection from the given function. The resulting
// selection will discard any value whose kind is not k.
func Filter(k tree.Kind, f func(*tree.Value) bool) Selection {
	return func(v *tree.Value) bool { return v.Is(k) && f(v) }
}
