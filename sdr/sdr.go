package sdr

// Option is one entry of a fixed choice list as presented to the user.
type Option[T comparable] struct {
	Value T
	Label string
}

func options[T interface {
	comparable
	Label() string
}](vals []T) []Option[T] {
	opts := make([]Option[T], 0, len(vals))
	for _, v := range vals {
		opts = append(opts, Option[T]{Value: v, Label: v.Label()})
	}
	return opts
}

// DefaultIndex returns the position of def within opts or 0 if it is not listed.
func DefaultIndex[T comparable](opts []Option[T], def T) int {
	for i, o := range opts {
		if o.Value == def {
			return i
		}
	}
	return 0
}
