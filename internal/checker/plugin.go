package checker

import (
	"go/ast"
	"go/token"
)

// Context is the source location a diagnostic is attached to.
// Every ast.Node satisfies it.
type Context interface {
	Pos() token.Pos
	End() token.Pos
}

// API is the part of the host a hook may call back into.
type API interface {
	// Fail reports an error diagnostic at ctx. Analysis continues.
	Fail(msg string, ctx Context)
}

// FunctionContext describes a single resolved call to a hooked function.
// The host creates it for one hook invocation; hooks must not retain it.
type FunctionContext struct {
	// DefaultReturnType is the type the host would give the call without
	// the hook. For generic callees it is a GenericInstance whose Args are
	// the call's type arguments.
	DefaultReturnType Type

	// ArgTypes holds the inferred argument types grouped per formal
	// parameter. A parameter with no actual argument has an empty group.
	ArgTypes [][]Type

	// Args holds the argument expressions, grouped like ArgTypes.
	Args [][]ast.Expr

	// Context is the call expression.
	Context Context

	// API reports diagnostics.
	API API
}

// FunctionHook computes the result type of a hooked call and may report
// diagnostics through ctx.API.
type FunctionHook func(ctx *FunctionContext) Type

// Plugin is implemented by checker extensions.
type Plugin interface {
	// FunctionHook returns the hook for the function with the given
	// fully-qualified name, or nil if the plugin does not handle it.
	FunctionHook(fullname string) FunctionHook
}

// Factory creates a plugin for the host checker version. Returning nil
// declines activation.
type Factory func(version string) Plugin

// Chain asks each plugin in order and uses the first hook offered.
type Chain []Plugin

func (c Chain) FunctionHook(fullname string) FunctionHook {
	for _, p := range c {
		if hook := p.FunctionHook(fullname); hook != nil {
			return hook
		}
	}
	return nil
}
