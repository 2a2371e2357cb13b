package interp

import "fmt"

// Instance is a live object of a Class: a field map plus a pointer back to
// its class for method lookup.
type Instance struct {
	Class  *Class
	fields map[string]Value
}

func (i *Instance) String() string { return fmt.Sprintf("<%s instance>", i.Class.Name) }

// GetAttr implements HasAttrs: an own field shadows a method of the same
// name; otherwise the class's method table (and its superclass chain) is
// searched and the result bound to this instance.
func (i *Instance) GetAttr(name string) (Value, bool) {
	if v, ok := i.fields[name]; ok {
		return v, true
	}
	if method := i.Class.findMethod(name); method != nil {
		return method.bind(i), true
	}
	return nil, false
}

// SetAttr implements HasSetAttrs: instance fields are freely assignable,
// creating the field if it doesn't already exist.
func (i *Instance) SetAttr(name string, value Value) {
	i.fields[name] = value
}
