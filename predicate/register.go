package predicate

// Default returns a registry holding every built-in predicate. The
// returned registry is freshly constructed, so callers may extend it
// without affecting other consumers.
func Default() *Registry {
	r := NewRegistry()
	r.Register("contains", contains)
	r.Register("starts", starts)
	r.Register("ends", ends)
	r.Register("matches", matches)
	r.Register("test", test)
	r.Register("less", less)
	r.Register("more", more)
	r.Register("defined", defined)
	r.Register("undefined", undefined)
	r.Register("type", typeOf)
	r.Register("and", and)
	r.Register("or", or)
	r.Register("not", not)
	return r
}
