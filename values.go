package callprobe

import (
	"reflect"
)

const SQLTag = "sql"

var columnKinds = map[reflect.Kind]bool{ //nolint:gochecknoglobals
	reflect.Bool:    true,
	reflect.Int:     true,
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Uint:    true,
	reflect.Uint8:   true,
	reflect.Uint16:  true,
	reflect.Uint32:  true,
	reflect.Uint64:  true,
	reflect.Float32: true,
	reflect.Float64: true,
	reflect.String:  true,
}

// SQLValues returns the values of the fields of struct a tagged with SQLTag, by column name.
// Nested structs are flattened; fields of a nil nested struct pointer map to nil.
func SQLValues(a any, exclusions ...string) (map[string]any, error) {
	v, err := structValue(a)
	if err != nil {
		return nil, err
	}

	collector := valueCollector{
		root:       a,
		exclusions: make(map[string]bool, len(exclusions)),
		values:     make(map[string]any),
	}

	for _, exclusion := range exclusions {
		collector.exclusions[exclusion] = true
	}

	if err = collector.collect(v.Type(), v); err != nil {
		return nil, err
	}

	return collector.values, nil
}

type valueCollector struct {
	root       any
	exclusions map[string]bool
	values     map[string]any
}

// collect walks the fields of struct type t. v is invalid when the struct sits behind a nil pointer.
func (c valueCollector) collect(t reflect.Type, v reflect.Value) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fieldType := field.Type

		var fieldValue reflect.Value
		if v.IsValid() {
			fieldValue = v.Field(i)
		}

		// a nil pointer field maps to NULL; its struct fields are walked without values.
		for fieldType.Kind() == reflect.Ptr {
			fieldType = fieldType.Elem()

			if fieldValue.IsValid() {
				if fieldValue.IsNil() {
					fieldValue = reflect.Value{}
				} else {
					fieldValue = fieldValue.Elem()
				}
			}
		}

		var err error
		if fieldType.Kind() == reflect.Struct {
			err = c.collect(fieldType, fieldValue)
		} else {
			err = c.add(field, fieldType, fieldValue)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (c valueCollector) add(field reflect.StructField, fieldType reflect.Type, fieldValue reflect.Value) error {
	if !columnType(fieldType) {
		return nil
	}

	name := SQLName(field)
	if name == "" || c.exclusions[name] {
		return nil
	}

	if _, found := c.values[name]; found {
		return newError("callprobe: duplicate SQL column %q in struct %T", name, c.root)
	}

	if fieldValue.IsValid() {
		c.values[name] = fieldValue.Interface()
	} else {
		c.values[name] = nil
	}

	return nil
}

func SQLName(field reflect.StructField) string {
	return field.Tag.Get(SQLTag)
}

func structValue(a any) (reflect.Value, error) {
	v := reflect.ValueOf(a)

	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return v, newError("callprobe: failed to find a struct in %v", a)
	}

	return v, nil
}

func columnType(t reflect.Type) bool {
	return columnKinds[t.Kind()] || t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}
