package service

// Result carries either a value or the error that prevented producing it.
type Result[T any] struct {
	val T
	err error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{val: v}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) Get() (T, error) {
	return r.val, r.err
}

func (r Result[T]) Err() error {
	return r.err
}

// OrElse returns the value, or the fallback's value when r holds an error.
func (r Result[T]) OrElse(fallback func() T) T {
	if r.err != nil {
		return fallback()
	}
	return r.val
}
