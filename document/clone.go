package document

import "reflect"

// Clone returns a deep copy of v. Pointers, slices, maps and interfaces are
// copied recursively; unexported struct fields are copied by value.
func Clone[T any](v T) T {
	src := reflect.ValueOf(&v).Elem()
	dst := reflect.New(src.Type()).Elem()

	deepCopy(dst, src)

	return dst.Interface().(T)
}

func deepCopy(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return
		}

		p := reflect.New(src.Type().Elem())
		deepCopy(p.Elem(), src.Elem())
		dst.Set(p)

	case reflect.Interface:
		if src.IsNil() {
			return
		}

		e := reflect.New(src.Elem().Type()).Elem()
		deepCopy(e, src.Elem())
		dst.Set(e)

	case reflect.Slice:
		if src.IsNil() {
			return
		}

		s := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := range src.Len() {
			deepCopy(s.Index(i), src.Index(i))
		}

		dst.Set(s)

	case reflect.Map:
		if src.IsNil() {
			return
		}

		m := reflect.MakeMapWithSize(src.Type(), src.Len())

		iter := src.MapRange()
		for iter.Next() {
			e := reflect.New(src.Type().Elem()).Elem()
			deepCopy(e, iter.Value())
			m.SetMapIndex(iter.Key(), e)
		}

		dst.Set(m)

	case reflect.Struct:
		dst.Set(src)

		t := src.Type()
		for i := range t.NumField() {
			if t.Field(i).IsExported() {
				deepCopy(dst.Field(i), src.Field(i))
			}
		}

	default:
		dst.Set(src)
	}
}
