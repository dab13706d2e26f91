package asserttype

import (
	"fmt"

	"github.com/funvibe/typeasserts/internal/checker"
)

// Diagnostic texts. Tooling matches these byte for byte.
const (
	MissingTypeParamMessage = "You must provide a type parameter to 'assert_type'"
	mismatchFormat          = "assert_type failed. expected: '%s', actual '%s'"
)

// MismatchMessage formats the diagnostic for a failed assertion.
func MismatchMessage(expected, actual string) string {
	return fmt.Sprintf(mismatchFormat, expected, actual)
}

// Callback is the function hook for assert_type calls.
//
// The result is always the argument's inferred type, not the declared one, so
// a nested assertion observes the inner argument exactly as inferred.
func Callback(ctx *checker.FunctionContext) checker.Type {
	inst, ok := ctx.DefaultReturnType.(checker.GenericInstance)
	if !ok || len(inst.Args()) == 0 {
		panic(fmt.Sprintf("INTERNAL ERROR: assert_type default return type %v is not a generic instance", ctx.DefaultReturnType))
	}

	declared := inst.Args()[0]
	if checker.IsUninhabited(declared) {
		ctx.API.Fail(MissingTypeParamMessage, ctx.Context)
		return ctx.DefaultReturnType
	}

	if len(ctx.ArgTypes) == 0 || len(ctx.ArgTypes[0]) == 0 {
		// The host reports the missing argument itself.
		return ctx.DefaultReturnType
	}
	argType := ctx.ArgTypes[0][0]

	expected := extractType(declared)
	actual := extractType(argType)
	if !compatible(expected, actual) {
		ctx.API.Fail(MismatchMessage(typeName(expected), typeName(actual)), ctx.Context)
	}
	return argType
}

// compatible compares with the checker's own equality. Dynamic arguments
// disable checking.
func compatible(expected, actual checker.Type) bool {
	if checker.IsAny(actual) {
		return true
	}
	return expected.Equal(actual)
}

// extractType unwraps t to its canonical class form when it has one.
func extractType(t checker.Type) checker.Type {
	if c, ok := t.(checker.Canonicalizer); ok {
		if info := c.TypeInfo(); info != nil {
			return info
		}
	}
	return t
}

// typeName prefers the fully-qualified name and falls back to the default
// string form, which is how special types such as Any display.
func typeName(t checker.Type) string {
	if f, ok := t.(checker.Fullnamer); ok {
		if name := f.Fullname(); name != "" {
			return name
		}
	}
	return t.String()
}
