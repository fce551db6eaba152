package grid

import (
	"strconv"

	"github.com/colgrid/colgrid/pkg/errors"
)

// PropertyKind enumerates the closed set of layout properties. The set is
// fixed: adding a kind is a contract change for every consumer of the
// generated identifiers.
type PropertyKind uint8

const (
	// PropertySpan sizes a cell to n of the configured columns.
	PropertySpan PropertyKind = iota
	// PropertyOffset inserts n empty leading columns before a cell.
	PropertyOffset
	// PropertyOrder controls visual (not DOM) sequencing within a row.
	PropertyOrder
	// PropertyAuto sizes a cell to its content.
	PropertyAuto
	// PropertyFlex grows a cell to fill the remaining row space.
	PropertyFlex
)

// String returns the kind name used in JSON output and diagnostics.
func (k PropertyKind) String() string {
	switch k {
	case PropertySpan:
		return "span"
	case PropertyOffset:
		return "offset"
	case PropertyOrder:
		return "order"
	case PropertyAuto:
		return "auto"
	case PropertyFlex:
		return "flex"
	}
	return "unknown"
}

// orderTag discriminates the order value variants.
type orderTag uint8

const (
	orderUnset orderTag = iota
	orderFirst
	orderLast
	orderNumber
)

// OrderValue is the order domain: first, last, or a numeric position in
// [0, Columns]. The zero value means "unset" - a numeric order of 0 is a
// valid, distinct value and must be constructed with [OrderAt].
type OrderValue struct {
	tag orderTag
	n   int
}

// Order position sentinels. First sorts before every numeric position,
// Last after every numeric position.
var (
	First = OrderValue{tag: orderFirst}
	Last  = OrderValue{tag: orderLast}
)

// OrderAt returns a numeric order position.
func OrderAt(n int) OrderValue {
	return OrderValue{tag: orderNumber, n: n}
}

// ParseOrder parses "first", "last", or a decimal position.
func ParseOrder(s string) (OrderValue, error) {
	switch s {
	case "first":
		return First, nil
	case "last":
		return Last, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return OrderValue{}, errors.New(errors.ErrCodeInvalidOrder, "order must be \"first\", \"last\", or a number: %q", s)
	}
	return OrderAt(n), nil
}

// IsZero reports whether the value is unset.
func (o OrderValue) IsZero() bool { return o.tag == orderUnset }

// String returns the identifier token: the literal "first"/"last" tokens
// or the decimal position. First and last are deliberately not numeric so
// they can never collide with explicit positions 0..Columns.
func (o OrderValue) String() string {
	switch o.tag {
	case orderFirst:
		return "first"
	case orderLast:
		return "last"
	case orderNumber:
		return strconv.Itoa(o.n)
	}
	return ""
}

// Position returns the effective order position for a grid with the
// given column count: first sorts before position 0, last after the
// largest valid position. Stylesheet emission maps this straight to the
// CSS order property.
func (o OrderValue) Position(columns int) int {
	switch o.tag {
	case orderFirst:
		return -1
	case orderLast:
		return columns + 1
	}
	return o.n
}

// Property is one layout property value as a tagged union: the Kind
// discriminates, Value carries span/offset counts, and Order carries the
// order position. Exhaustive switches over Kind replace the string-keyed
// dispatch a stylesheet would use, so invalid combinations cannot be
// expressed.
type Property struct {
	Kind  PropertyKind
	Value int        // span or offset count; unused for other kinds
	Order OrderValue // order position; set only when Kind is PropertyOrder
}

// Span returns the span property for n columns.
func Span(n int) Property { return Property{Kind: PropertySpan, Value: n} }

// Offset returns the offset property for n leading empty columns.
func Offset(n int) Property { return Property{Kind: PropertyOffset, Value: n} }

// Order returns the order property for the given position.
func Order(v OrderValue) Property { return Property{Kind: PropertyOrder, Order: v} }

// Auto returns the shrink-to-content sizing property.
func Auto() Property { return Property{Kind: PropertyAuto} }

// Flex returns the fill-remaining-space sizing property.
func Flex() Property { return Property{Kind: PropertyFlex} }

// Validate checks the property value against its declared domain for a
// grid with the given column count. Out-of-domain values are rejected
// with a description, never clamped.
func (p Property) Validate(columns int) error {
	switch p.Kind {
	case PropertySpan:
		if p.Value < 1 || p.Value > columns {
			return errors.New(errors.ErrCodeInvalidSpan, "span %d out of range [1, %d]", p.Value, columns)
		}
	case PropertyOffset:
		if p.Value < 0 || p.Value >= columns {
			return errors.New(errors.ErrCodeInvalidOffset, "offset %d out of range [0, %d]", p.Value, columns-1)
		}
	case PropertyOrder:
		switch p.Order.tag {
		case orderUnset:
			return errors.New(errors.ErrCodeInvalidOrder, "order value is unset")
		case orderNumber:
			if p.Order.n < 0 || p.Order.n > columns {
				return errors.New(errors.ErrCodeInvalidOrder, "order %d out of range [0, %d]", p.Order.n, columns)
			}
		}
	case PropertyAuto, PropertyFlex:
		// No value domain.
	default:
		return errors.New(errors.ErrCodeInternal, "unknown property kind %d", p.Kind)
	}
	return nil
}

// token returns the value part of the rule identifier.
func (p Property) token() string {
	switch p.Kind {
	case PropertySpan:
		return strconv.Itoa(p.Value)
	case PropertyOffset:
		return "offset-" + strconv.Itoa(p.Value)
	case PropertyOrder:
		return "order-" + p.Order.String()
	case PropertyAuto:
		return "auto"
	case PropertyFlex:
		return "flex"
	}
	return ""
}
