package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// Column tag options understood by the model helpers:
//
//	db:"id,auto"             generated by the database, never written
//	db:"created_at,immutable" written on insert only
const (
	tagAuto      = "auto"
	tagImmutable = "immutable"
)

func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model, tagAuto)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// UpdateModel writes every mutable column of model to the rows matching where.
func UpdateModel(table string, model any, where ...Condition) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model, tagAuto, tagImmutable)
	if err != nil {
		return "", nil, err
	}

	b := Update(table)
	for i := range cols {
		b.Set(cols[i], vals[i])
	}
	return b.Where(where...).ToSQL()
}

func columnsAndValuesFromModel(model any, skipOptions ...string) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")
		col := strings.TrimSpace(parts[0])
		if col == "" || col == "-" {
			continue
		}
		if hasOption(parts[1:], skipOptions) {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

func hasOption(options, wanted []string) bool {
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		for _, w := range wanted {
			if opt == w {
				return true
			}
		}
	}
	return false
}
