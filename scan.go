package callprobe

//go:generate mockery --name Rows --inpackage --testonly --with-expecter

import (
	"database/sql"
	"reflect"
	"sync"

	"golang.org/x/exp/slices"
)

var (
	// SQLTagsCache caches field indexes by SQL tag, by struct type.
	SQLTagsCache = sync.Map{} //nolint:gochecknoglobals

	_ Rows = (*sql.Rows)(nil)
)

type Rows interface {
	Columns() ([]string, error)
	Scan(dest ...any) error
}

// Scanner reads rows into structs of type T, matching columns with SQL tags.
type Scanner[T any] struct {
	fields []int
	rows   Rows
}

func NewScanner[T any](rows Rows) *Scanner[T] {
	return &Scanner[T]{rows: rows}
}

// Scan reads the current row.
func (scanner *Scanner[T]) Scan() (T, error) {
	var result T

	v := reflect.ValueOf(&result).Elem()
	if v.Kind() != reflect.Struct {
		return result, newError("callprobe: expected a struct type, got %T", result)
	}

	if scanner.fields == nil {
		if err := scanner.init(v.Type()); err != nil {
			return result, err
		}
	}

	err := scanner.rows.Scan(scanner.newDest(v)...)

	return result, err
}

func (scanner *Scanner[T]) newDest(v reflect.Value) []any {
	result := make([]any, len(scanner.fields))

	for i, fieldIndex := range scanner.fields {
		result[i] = v.Field(fieldIndex).Addr().Interface()
	}

	return result
}

func (scanner *Scanner[T]) init(t reflect.Type) error {
	columns, err := scanner.rows.Columns()
	if err != nil {
		return err
	}

	indexByName, err := fieldsIndex(t)
	if err != nil {
		return err
	}

	fields := make([]int, len(columns))

	for i, column := range columns {
		if slices.Contains(columns[:i], column) {
			return newError("callprobe: duplicate SQL column %q in query", column)
		}

		fieldIndex, found := indexByName[column]
		if !found {
			return newError("callprobe: missing SQL tag for column %q in %v", column, t)
		}

		fields[i] = fieldIndex
	}

	scanner.fields = fields

	return nil
}

func fieldsIndex(t reflect.Type) (map[string]int, error) {
	cache, found := SQLTagsCache.Load(t)
	if found {
		return cache.(map[string]int), nil //nolint:forcetypeassert
	}

	result, err := buildFieldsIndex(t)
	if err != nil {
		return nil, err
	}

	SQLTagsCache.Store(t, result)

	return result, nil
}

// buildFieldsIndex returns the index of the exported fields of struct type t by SQL tag.
func buildFieldsIndex(t reflect.Type) (map[string]int, error) {
	result := make(map[string]int, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		tag := SQLName(field)
		if tag == "" || !field.IsExported() {
			continue
		}

		if _, found := result[tag]; found {
			return nil, newError("callprobe: duplicate SQL tag %q in %v", tag, t)
		}

		result[tag] = i
	}

	return result, nil
}
