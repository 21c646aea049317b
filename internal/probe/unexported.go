package probe

import (
	"fmt"
	"reflect"
	"unsafe"
)

// SetField assigns value into the field at idx within structValue (which
// must be the addressable struct a component was allocated as, i.e.
// instancePtr.Elem()). It tolerates non-public slots: the spec requires
// the probe to bypass Go's own unexported-field write protection, the
// equivalent of a reflective runtime's "force access" flag on a private
// field.
func SetField(structValue reflect.Value, idx []int, value reflect.Value) error {
	field := structValue.FieldByIndex(idx)

	if !field.CanSet() {
		if !field.CanAddr() {
			return fmt.Errorf("probe: field at index %v is not addressable", idx)
		}
		field = reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
	}

	if !value.Type().AssignableTo(field.Type()) {
		if value.Type().ConvertibleTo(field.Type()) {
			value = value.Convert(field.Type())
		} else {
			return fmt.Errorf("probe: cannot assign %s into field of type %s", value.Type(), field.Type())
		}
	}

	field.Set(value)
	return nil
}
