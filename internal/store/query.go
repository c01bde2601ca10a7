package store

import "go.mongodb.org/mongo-driver/bson"

// Filter is a conjunction of per-field conditions. Only comparable scalar
// values (strings, numbers, bools) are supported as operands; that covers
// every query this system issues.
type Filter []Cond

type condOp int

const (
	opEq condOp = iota
	opIn
)

// Cond is a single field condition. Build with Eq or In.
type Cond struct {
	field  string
	op     condOp
	value  any
	values []any
}

// Eq matches documents whose field equals value.
func Eq(field string, value any) Cond {
	return Cond{field: field, op: opEq, value: value}
}

// In matches documents whose field equals any of values. A nil member also
// matches documents where the field is absent or null.
func In(field string, values ...any) Cond {
	return Cond{field: field, op: opIn, values: values}
}

// toBSON translates the filter to the driver's native form.
func (f Filter) toBSON() bson.M {
	m := bson.M{}
	for _, c := range f {
		switch c.op {
		case opEq:
			m[c.field] = c.value
		case opIn:
			m[c.field] = bson.M{"$in": c.values}
		}
	}
	return m
}

// matches evaluates the filter against a decoded document. Used by the
// in-memory backend; mirrors Mongo semantics for the supported operators,
// including $in with a null member matching a missing field.
func (f Filter) matches(doc bson.M) bool {
	for _, c := range f {
		if !c.matches(doc) {
			return false
		}
	}
	return true
}

func (c Cond) matches(doc bson.M) bool {
	v, ok := doc[c.field]
	switch c.op {
	case opEq:
		return ok && v == c.value
	case opIn:
		for _, want := range c.values {
			if want == nil {
				if !ok || v == nil {
					return true
				}
				continue
			}
			if ok && v == want {
				return true
			}
		}
	}
	return false
}
