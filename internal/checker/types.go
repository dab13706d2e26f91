// Package checker defines the contract between a static type checker host and
// the plugins that observe its inference results.
//
// The host owns every Type value. Plugins never construct host types; they
// only compare them with Equal, query capabilities, and hand one back as the
// result type of a hooked call.
package checker

// AssertTypeFullname is the fully-qualified name of the runtime assertion
// primitive that the asserttype plugin hooks by default.
const AssertTypeFullname = "github.com/funvibe/typeasserts.AssertType"

// Type is the checker's representation of an inferred type.
type Type interface {
	// Equal reports whether two types are the same under the checker's own
	// equality rules.
	Equal(other Type) bool

	// String is the checker's default textual form of the type.
	String() string
}

// GenericInstance is implemented by instantiations of generic types or
// functions.
type GenericInstance interface {
	Type
	Args() []Type
}

// Fullnamer is implemented by types that expose a fully-qualified name.
type Fullnamer interface {
	Fullname() string
}

// Canonicalizer is implemented by types that have a canonical class form
// distinct from themselves (aliases, literals).
type Canonicalizer interface {
	TypeInfo() Type
}

// UninhabitedType is the bottom type. Hosts use it for type parameter slots
// they could not fill.
type UninhabitedType struct{}

func (UninhabitedType) Equal(other Type) bool {
	_, ok := other.(UninhabitedType)
	return ok
}

func (UninhabitedType) String() string { return "<nothing>" }

// AnyType is the dynamic type: checking is disabled for expressions of this
// type.
type AnyType struct{}

func (AnyType) Equal(other Type) bool {
	_, ok := other.(AnyType)
	return ok
}

func (AnyType) String() string { return "Any" }

// IsUninhabited reports whether t is the bottom type.
func IsUninhabited(t Type) bool {
	_, ok := t.(UninhabitedType)
	return ok
}

// IsAny reports whether t is the dynamic type.
func IsAny(t Type) bool {
	_, ok := t.(AnyType)
	return ok
}
