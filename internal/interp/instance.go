package interp

import "github.com/nwidger/lox/internal/token"

// Instance holds a reference to its class and a mutable field map.
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance creates a fresh instance with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

func (i *Instance) String() string { return i.class.Name + " instance" }

// Get looks up a field first, then a method bound to this instance, per
// spec.md §4.5's property-access rule.
func (i *Instance) Get(name token.Token) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := i.class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, NewRuntimeError(name, "Undefined property '"+name.Lexeme+"'.")
}

// Set stores into the field map, creating the field if absent.
func (i *Instance) Set(name token.Token, value Value) {
	i.fields[name.Lexeme] = value
}
