package repository

import "fmt"

type operator int

const (
	opAll operator = iota
	opEquals
	opEqualsAnyOf
	opInArray
)

// Predicate is a single-field filter. The zero value matches every record.
type Predicate struct {
	Key    string
	op     operator
	value  any
	values []any
}

// All matches every record.
func All() Predicate { return Predicate{} }

// Equals matches records whose scalar field equals value.
func Equals(key string, value any) Predicate {
	return Predicate{Key: key, op: opEquals, value: value}
}

// EqualsAnyOf matches records whose scalar field equals one of values.
func EqualsAnyOf[V any](key string, values ...V) Predicate {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Predicate{Key: key, op: opEqualsAnyOf, values: vs}
}

// InArray matches records whose list-valued field contains value.
func InArray(key string, value string) Predicate {
	return Predicate{Key: key, op: opInArray, value: value}
}

// Match evaluates the predicate against a record's named fields. Unknown keys
// never match.
func (p Predicate) Match(field func(key string) (any, bool)) bool {
	if p.op == opAll {
		return true
	}
	v, ok := field(p.Key)
	if !ok {
		return false
	}
	switch p.op {
	case opEquals:
		return scalarEqual(v, p.value)
	case opEqualsAnyOf:
		for _, want := range p.values {
			if scalarEqual(v, want) {
				return true
			}
		}
		return false
	case opInArray:
		list, ok := v.([]string)
		if !ok {
			return false
		}
		for _, item := range list {
			if scalarEqual(item, p.value) {
				return true
			}
		}
		return false
	}
	return false
}

func (p Predicate) String() string {
	switch p.op {
	case opEquals:
		return fmt.Sprintf("%s = %v", p.Key, p.value)
	case opEqualsAnyOf:
		return fmt.Sprintf("%s in %v", p.Key, p.values)
	case opInArray:
		return fmt.Sprintf("%v in %s", p.value, p.Key)
	}
	return "*"
}

// scalarEqual compares strings and ints; lists and other kinds are never
// equal.
func scalarEqual(a, b any) bool {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case int:
		switch y := b.(type) {
		case int:
			return x == y
		case int64:
			return int64(x) == y
		}
	}
	return false
}
