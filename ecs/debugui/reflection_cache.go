package debugui

import (
	"reflect"
)

type fieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
	IsStruct  bool
	IsSlice   bool
	IsMap     bool
}

// reflectionCache memoizes exported-field layouts so the inspector does not
// re-walk struct types every frame. The UI runs on the world's single
// thread, so no locking is needed.
type reflectionCache struct {
	fields map[reflect.Type][]fieldInfo
}

func newReflectionCache() *reflectionCache {
	return &reflectionCache{
		fields: make(map[reflect.Type][]fieldInfo),
	}
}

func (rc *reflectionCache) getFields(t reflect.Type) []fieldInfo {
	if cached, ok := rc.fields[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, fieldInfo{
				Name:      field.Name,
				Type:      field.Type,
				Index:     i,
				IsPointer: field.Type.Kind() == reflect.Ptr,
				IsStruct:  field.Type.Kind() == reflect.Struct,
				IsSlice:   field.Type.Kind() == reflect.Slice,
				IsMap:     field.Type.Kind() == reflect.Map,
			})
		}
	}

	rc.fields[t] = fields
	return fields
}

var globalReflectionCache = newReflectionCache()
