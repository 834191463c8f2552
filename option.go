package budget

// Option is a value that may be absent.
//
// The zero Option is absent.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsSet reports whether the value is present.
func (o Option[T]) IsSet() bool { return o.ok }

// Or returns the value if present, or def otherwise.
func (o Option[T]) Or(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}
