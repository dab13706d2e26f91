// Package typeasserts provides static type assertions that are verified by the
// asserttype analyzer instead of at runtime.
//
// A call such as
//
//	typeasserts.AssertType[float64](x)
//
// compiles to a no-op that returns x. When the asserttype analyzer runs, it
// compares the declared type argument against the type the Go type checker
// inferred for x and reports a diagnostic when they differ:
//
//	assert_type failed. expected: 'float64', actual 'int'
//
// Omitting the type argument reports
//
//	You must provide a type parameter to 'assert_type'
package typeasserts

// AssertType returns value unchanged. T is the declared type of value and is
// only read by the analyzer. V is inferred from the argument, so the call
// keeps the argument's own type and nested assertions see it unmodified.
func AssertType[T, V any](value V) V {
	return value
}
