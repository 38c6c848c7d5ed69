package tanktemp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks a tank construction input that is outside its
	// accepted set or range, or conflicts with another input.
	ErrInvalidInput = errors.New("invalid tank input")

	// ErrUnsupportedGeometry marks a tank geometry that validates but has no
	// computation branch (the floating roof family).
	ErrUnsupportedGeometry = errors.New("unsupported tank geometry")
)

// Tank geometry
type TankGeometry string

const (
	VerticalCylinder     TankGeometry = "vertical cylinder"
	HorizontalCylinder   TankGeometry = "horizontal cylinder"
	ExternalFloatingRoof TankGeometry = "external floating roof tank"
	InternalFloatingRoof TankGeometry = "internal floating roof tank"
	DomedFloatingRoof    TankGeometry = "domed floating roof tank"
)

var tankGeometries = []TankGeometry{
	VerticalCylinder,
	HorizontalCylinder,
	ExternalFloatingRoof,
	InternalFloatingRoof,
	DomedFloatingRoof,
}

// ParseTankGeometry normalizes s to one of the accepted tank geometries.
func ParseTankGeometry(s string) (TankGeometry, error) {
	g := TankGeometry(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range tankGeometries {
		if g == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: tank geometry %q; accepted tank types are: %s",
		ErrInvalidInput, s, quoteOptions(tankGeometries))
}

// Roof type, vertical cylinders only.
type RoofType string

const (
	ConeRoof RoofType = "cone"
	DomeRoof RoofType = "dome"
)

var roofTypes = []RoofType{ConeRoof, DomeRoof}

// ParseRoofType normalizes s to one of the accepted roof types.
func ParseRoofType(s string) (RoofType, error) {
	r := RoofType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range roofTypes {
		if r == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: roof type %q; accepted roof types are: %s",
		ErrInvalidInput, s, quoteOptions(roofTypes))
}

// Insulation class
type Insulation string

const (
	Uninsulated Insulation = "uninsulated"
	// PartialInsulation is an insulated shell under an exposed roof.
	PartialInsulation Insulation = "partial"
	FullInsulation    Insulation = "full"
)

var insulations = []Insulation{Uninsulated, PartialInsulation, FullInsulation}

// ParseInsulation normalizes s to one of the accepted insulation classes.
func ParseInsulation(s string) (Insulation, error) {
	i := Insulation(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range insulations {
		if i == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: insulation %q; accepted insulation classes are: %s",
		ErrInvalidInput, s, quoteOptions(insulations))
}

// Paint color, Table 7.1-6.
type PaintColor string

const (
	White             PaintColor = "white"
	SpecularAluminum  PaintColor = "specular aluminum"
	DiffuseAluminum   PaintColor = "diffuse aluminum"
	BeigeCream        PaintColor = "beige/cream"
	Black             PaintColor = "black"
	Brown             PaintColor = "brown"
	LightGray         PaintColor = "light gray"
	MediumGray        PaintColor = "medium gray"
	DarkGreen         PaintColor = "dark green"
	PrimerRed         PaintColor = "primer red"
	RedIronOxideRust  PaintColor = "red iron oxide rust"
	Tan               PaintColor = "tan"
	UnpaintedAluminum PaintColor = "unpainted aluminum"
)

var paintColors = []PaintColor{
	White,
	SpecularAluminum,
	DiffuseAluminum,
	BeigeCream,
	Black,
	Brown,
	LightGray,
	MediumGray,
	DarkGreen,
	PrimerRed,
	RedIronOxideRust,
	Tan,
	UnpaintedAluminum,
}

// ParsePaintColor normalizes s to one of the accepted paint colors.
func ParsePaintColor(s string) (PaintColor, error) {
	c := PaintColor(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range paintColors {
		if c == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: paint color %q; accepted colors are: %s",
		ErrInvalidInput, s, quoteOptions(paintColors))
}

// Paint condition, Table 7.1-6.
type PaintCondition string

const (
	ConditionNew     PaintCondition = "new"
	ConditionAverage PaintCondition = "average"
	ConditionAged    PaintCondition = "aged"
)

var paintConditions = []PaintCondition{ConditionNew, ConditionAverage, ConditionAged}

// ParsePaintCondition normalizes s to one of the accepted paint conditions.
func ParsePaintCondition(s string) (PaintCondition, error) {
	c := PaintCondition(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range paintConditions {
		if c == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: paint condition %q; accepted paint conditions are: %s",
		ErrInvalidInput, s, quoteOptions(paintConditions))
}

func quoteOptions[T ~string](opts []T) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = "'" + string(o) + "'"
	}
	return strings.Join(quoted, ", ")
}
