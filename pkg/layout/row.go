package layout

import (
	"github.com/colgrid/colgrid/pkg/errors"
)

// Gap selects the spacing between cells in a row.
type Gap string

// Gap sizes. GapNone emits no class; the styling surface's default
// spacing applies.
const (
	GapNone   Gap = ""
	GapSmall  Gap = "sm"
	GapMedium Gap = "md"
	GapLarge  Gap = "lg"
)

// Justify selects main-axis distribution of cells within a row.
type Justify string

// Main-axis justification values.
const (
	JustifyDefault Justify = ""
	JustifyStart   Justify = "start"
	JustifyCenter  Justify = "center"
	JustifyEnd     Justify = "end"
	JustifyBetween Justify = "between"
	JustifyAround  Justify = "around"
	JustifyEvenly  Justify = "evenly"
)

// Align selects cross-axis alignment of cells within a row.
type Align string

// Cross-axis alignment values.
const (
	AlignDefault Align = ""
	AlignStart   Align = "start"
	AlignCenter  Align = "center"
	AlignEnd     Align = "end"
	AlignStretch Align = "stretch"
)

// Wrap selects the row's wrapping behavior.
type Wrap string

// Wrap values. The default (wrapping) emits no class.
const (
	WrapDefault Wrap = ""
	WrapNone    Wrap = "nowrap"
	WrapReverse Wrap = "reverse"
)

// Element selects the semantic element a row renders as.
type Element string

// Row element kinds.
const (
	ElementDefault Element = "" // renders as div
	ElementDiv     Element = "div"
	ElementSection Element = "section"
	ElementList    Element = "ul"
	ElementOrdered Element = "ol"
)

// Row describes the flex container for a set of columns. Every field is
// optional: an omitted property emits no class, so the default state is
// indistinguishable from "no intent specified" - defaults live in the
// styling surface, not here.
type Row struct {
	Gap     Gap     `json:"gap,omitempty"`
	Justify Justify `json:"justify,omitempty"`
	Align   Align   `json:"align,omitempty"`
	Wrap    Wrap    `json:"wrap,omitempty"`
	Element Element `json:"element,omitempty"`
}

// RowResult is a resolved row: the semantic element to render and the
// class list to attach, base "row" class first.
type RowResult struct {
	Element string
	Classes []string
}

// ResolveRow resolves a row description to its element and class list.
// The row utility classes are a fixed vocabulary emitted alongside the
// generated column rules in the stylesheet preamble; they do not live in
// the registry because they carry no breakpoint or value domain.
func ResolveRow(row Row) (RowResult, error) {
	res := RowResult{
		Element: "div",
		Classes: make([]string, 0, 5),
	}
	res.Classes = append(res.Classes, "row")

	switch row.Gap {
	case GapNone:
	case GapSmall, GapMedium, GapLarge:
		res.Classes = append(res.Classes, "row-gap-"+string(row.Gap))
	default:
		return RowResult{}, errors.New(errors.ErrCodeInvalidRow, "unknown gap %q", row.Gap)
	}

	switch row.Justify {
	case JustifyDefault:
	case JustifyStart, JustifyCenter, JustifyEnd, JustifyBetween, JustifyAround, JustifyEvenly:
		res.Classes = append(res.Classes, "row-justify-"+string(row.Justify))
	default:
		return RowResult{}, errors.New(errors.ErrCodeInvalidRow, "unknown justify %q", row.Justify)
	}

	switch row.Align {
	case AlignDefault:
	case AlignStart, AlignCenter, AlignEnd, AlignStretch:
		res.Classes = append(res.Classes, "row-align-"+string(row.Align))
	default:
		return RowResult{}, errors.New(errors.ErrCodeInvalidRow, "unknown align %q", row.Align)
	}

	switch row.Wrap {
	case WrapDefault:
	case WrapNone:
		res.Classes = append(res.Classes, "row-nowrap")
	case WrapReverse:
		res.Classes = append(res.Classes, "row-wrap-reverse")
	default:
		return RowResult{}, errors.New(errors.ErrCodeInvalidRow, "unknown wrap %q", row.Wrap)
	}

	switch row.Element {
	case ElementDefault:
	case ElementDiv, ElementSection, ElementList, ElementOrdered:
		res.Element = string(row.Element)
	default:
		return RowResult{}, errors.New(errors.ErrCodeInvalidRow, "unknown element %q", row.Element)
	}

	return res, nil
}
