package gohost

import (
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"github.com/funvibe/typeasserts/internal/checker"
)

// Class is a go/types type presented to plugins.
type Class struct {
	typ types.Type
}

// NewClass wraps t.
func NewClass(t types.Type) *Class {
	return &Class{typ: t}
}

// Type returns the wrapped go/types type.
func (c *Class) Type() types.Type { return c.typ }

// Equal reports types.Identical for two classes.
func (c *Class) Equal(other checker.Type) bool {
	o, ok := other.(*Class)
	return ok && types.Identical(c.typ, o.typ)
}

// Fullname is the type with package-path qualified names,
// e.g. "example.com/temp.Celsius" or "[]example.com/temp.Celsius".
func (c *Class) Fullname() string {
	return types.TypeString(c.typ, nil)
}

// String uses package names instead of paths.
func (c *Class) String() string {
	return types.TypeString(c.typ, func(p *types.Package) string { return p.Name() })
}

// TypeInfo returns the class with aliases resolved, or nil if c is already
// canonical.
func (c *Class) TypeInfo() checker.Type {
	u := types.Unalias(c.typ)
	if u == c.typ {
		return nil
	}
	return &Class{typ: u}
}

// Literal is an untyped constant expression. Its canonical form is the
// constant's default type.
type Literal struct {
	typ *types.Basic
	val constant.Value
}

// Equal reports whether both literals have the same kind and value.
func (l *Literal) Equal(other checker.Type) bool {
	o, ok := other.(*Literal)
	if !ok || l.typ.Kind() != o.typ.Kind() {
		return false
	}
	if l.val == nil || o.val == nil {
		return l.val == nil && o.val == nil
	}
	return constant.Compare(l.val, token.EQL, o.val)
}

func (l *Literal) String() string {
	if l.val == nil {
		return l.typ.Name()
	}
	return fmt.Sprintf("%s(%s)", l.typ.Name(), l.val.ExactString())
}

// TypeInfo returns the default type of the constant.
func (l *Literal) TypeInfo() checker.Type {
	return &Class{typ: types.Default(l.typ)}
}

// Instance is a generic function instantiated at a call site. Slots the type
// checker could not fill hold checker.UninhabitedType.
type Instance struct {
	fullname string
	args     []checker.Type
}

// NewInstance returns the instantiation of the generic function fullname.
func NewInstance(fullname string, args ...checker.Type) *Instance {
	return &Instance{fullname: fullname, args: args}
}

func (i *Instance) Args() []checker.Type { return i.args }

func (i *Instance) Equal(other checker.Type) bool {
	o, ok := other.(*Instance)
	if !ok || o.fullname != i.fullname || len(o.args) != len(i.args) {
		return false
	}
	for k := range i.args {
		if !i.args[k].Equal(o.args[k]) {
			return false
		}
	}
	return true
}

func (i *Instance) Fullname() string { return i.fullname + i.argList() }

func (i *Instance) String() string {
	name := i.fullname
	if dot := strings.LastIndex(name, "/"); dot >= 0 {
		name = name[dot+1:]
	}
	return name + i.argList()
}

func (i *Instance) argList() string {
	if len(i.args) == 0 {
		return ""
	}
	parts := make([]string, len(i.args))
	for k, a := range i.args {
		parts[k] = a.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Wrap converts a recorded expression type to the plugin representation.
// Expressions without a valid type, and untyped nil, become checker.AnyType.
func Wrap(tv types.TypeAndValue) checker.Type {
	if tv.Type == nil {
		return checker.AnyType{}
	}
	if b, ok := tv.Type.(*types.Basic); ok {
		// Untyped nil has no type of its own until the host assigns one.
		if b.Kind() == types.Invalid || b.Kind() == types.UntypedNil {
			return checker.AnyType{}
		}
		if b.Info()&types.IsUntyped != 0 {
			return &Literal{typ: b, val: tv.Value}
		}
	}
	return &Class{typ: tv.Type}
}
