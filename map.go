package deferred

// Map returns a Deferred that fills with f(v) once base fills with v. The
// transform runs via exec; a nil exec selects the package default executor.
func Map[T, U any](base Future[T], exec Executor, f func(T) U) *Deferred[U] {
	d := New[U]()
	base.Upon(orDefault(exec), func(v T) {
		d.Fill(f(v))
	})
	return d
}

// AndThen returns a Deferred that fills with the value of the future produced
// by f(v) once base fills with v. f runs via exec (package default when nil)
// after base fills and before the returned Deferred fills.
func AndThen[T, U any](base Future[T], exec Executor, f func(T) Future[U]) *Deferred[U] {
	d := New[U]()
	base.Upon(orDefault(exec), func(v T) {
		f(v).Upon(inline{}, func(u U) {
			d.Fill(u)
		})
	})
	return d
}

// Ignored returns a view of base that drops the payload. Useful when only the
// completion signal matters.
func Ignored[T any](base Future[T]) Future[struct{}] {
	return Transformed(base, func(T) struct{} { return struct{}{} })
}
