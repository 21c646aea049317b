package probe

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// typeNameCache memoizes the formatted name of a reflect.Type for error
// messages, the same write-once-per-key pattern the teacher's type_cache.go
// uses for its typeInfo cache.
var typeNameCache sync.Map // map[reflect.Type]string

// FormatType renders t the way Forge's errors report types: package-
// qualified for named types, with pointer/slice/map wrappers preserved.
func FormatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if cached, ok := typeNameCache.Load(t); ok {
		return cached.(string)
	}

	name := formatTypeDepth(t, 0)
	actual, _ := typeNameCache.LoadOrStore(t, name)
	return actual.(string)
}

func formatTypeDepth(t reflect.Type, depth int) string {
	const maxDepth = 50
	if depth > maxDepth || t == nil {
		return "<...>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + formatTypeDepth(t.Elem(), depth+1)
	case reflect.Slice:
		return "[]" + formatTypeDepth(t.Elem(), depth+1)
	case reflect.Map:
		return fmt.Sprintf("map[%s]%s", formatTypeDepth(t.Key(), depth+1), formatTypeDepth(t.Elem(), depth+1))
	case reflect.Interface, reflect.Struct:
		if t.PkgPath() == "" {
			if t.Name() == "" {
				return t.String()
			}
			return t.Name()
		}
		return lastSegment(t.PkgPath()) + "." + t.Name()
	default:
		if t.PkgPath() == "" {
			return t.String()
		}
		return lastSegment(t.PkgPath()) + "." + t.Name()
	}
}

func lastSegment(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
