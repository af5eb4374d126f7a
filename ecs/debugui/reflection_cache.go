package debugui

import (
	"fmt"
	"image/color"
	"reflect"
)

// fieldKind selects the widget used to edit a field.
type fieldKind int

const (
	fieldScalar fieldKind = iota
	fieldStruct
	fieldColor
	fieldCollection
	fieldPointer
)

var (
	rgbaType     = reflect.TypeFor[color.RGBA]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

type FieldInfo struct {
	Name  string
	Type  reflect.Type
	Index int
	Kind  fieldKind
	// Named reports whether the field's type has a String method, e.g. an enum.
	Named bool
}

// ReflectionCache memoizes the exported fields of component types. It is
// only used from the render goroutine and is not safe for concurrent use.
type ReflectionCache struct {
	fields map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{fields: make(map[reflect.Type][]FieldInfo)}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	if cached, ok := rc.fields[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:  field.Name,
				Type:  field.Type,
				Index: i,
				Kind:  kindOf(field.Type),
				Named: field.Type.Implements(stringerType),
			})
		}
	}

	rc.fields[t] = fields
	return fields
}

func kindOf(t reflect.Type) fieldKind {
	switch {
	case t == rgbaType:
		return fieldColor
	case t.Kind() == reflect.Struct:
		return fieldStruct
	case t.Kind() == reflect.Slice, t.Kind() == reflect.Map, t.Kind() == reflect.Array:
		return fieldCollection
	case t.Kind() == reflect.Ptr, t.Kind() == reflect.Func, t.Kind() == reflect.Interface:
		return fieldPointer
	}
	return fieldScalar
}

var globalReflectionCache = NewReflectionCache()
