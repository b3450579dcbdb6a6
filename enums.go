package sedml

// LineType is the dash pattern of a line style.
type LineType int8

const (
	LineTypeInvalid = LineType(iota)
	LineTypeNone
	LineTypeSolid
	LineTypeDash
	LineTypeDot
	LineTypeDashDot
	LineTypeDashDotDot
)

var lineTypeStrings = [...]string{
	LineTypeInvalid:    "invalid LineType value",
	LineTypeNone:       "none",
	LineTypeSolid:      "solid",
	LineTypeDash:       "dash",
	LineTypeDot:        "dot",
	LineTypeDashDot:    "dashDot",
	LineTypeDashDotDot: "dashDotDot",
}

func (t LineType) String() string { return enumString(lineTypeStrings[:], int(t)) }
func (t LineType) IsValid() bool  { return t > LineTypeInvalid && int(t) < len(lineTypeStrings) }

// LineTypeFromString returns LineTypeInvalid for unknown strings.
func LineTypeFromString(s string) LineType { return LineType(enumFromString(lineTypeStrings[:], s)) }

// MarkerType is the symbol drawn at data points.
type MarkerType int8

const (
	MarkerTypeInvalid = MarkerType(iota)
	MarkerTypeNone
	MarkerTypeSquare
	MarkerTypeCircle
	MarkerTypeDiamond
	MarkerTypeXCross
	MarkerTypePlus
	MarkerTypeStar
	MarkerTypeTriangleUp
	MarkerTypeTriangleDown
	MarkerTypeTriangleLeft
	MarkerTypeTriangleRight
	MarkerTypeHDash
	MarkerTypeVDash
)

var markerTypeStrings = [...]string{
	MarkerTypeInvalid:       "invalid MarkerType value",
	MarkerTypeNone:          "none",
	MarkerTypeSquare:        "square",
	MarkerTypeCircle:        "circle",
	MarkerTypeDiamond:       "diamond",
	MarkerTypeXCross:        "xCross",
	MarkerTypePlus:          "plus",
	MarkerTypeStar:          "star",
	MarkerTypeTriangleUp:    "triangleUp",
	MarkerTypeTriangleDown:  "triangleDown",
	MarkerTypeTriangleLeft:  "triangleLeft",
	MarkerTypeTriangleRight: "triangleRight",
	MarkerTypeHDash:         "hDash",
	MarkerTypeVDash:         "vDash",
}

func (t MarkerType) String() string { return enumString(markerTypeStrings[:], int(t)) }
func (t MarkerType) IsValid() bool  { return t > MarkerTypeInvalid && int(t) < len(markerTypeStrings) }

func MarkerTypeFromString(s string) MarkerType {
	return MarkerType(enumFromString(markerTypeStrings[:], s))
}

// CurveType selects how a curve is drawn.
type CurveType int8

const (
	CurveTypeInvalid = CurveType(iota)
	CurveTypePoints
	CurveTypeBar
	CurveTypeBarStacked
	CurveTypeHorizontalBar
	CurveTypeHorizontalBarStacked
)

var curveTypeStrings = [...]string{
	CurveTypeInvalid:              "invalid CurveType value",
	CurveTypePoints:               "points",
	CurveTypeBar:                  "bar",
	CurveTypeBarStacked:           "barStacked",
	CurveTypeHorizontalBar:        "horizontalBar",
	CurveTypeHorizontalBarStacked: "horizontalBarStacked",
}

func (t CurveType) String() string { return enumString(curveTypeStrings[:], int(t)) }
func (t CurveType) IsValid() bool  { return t > CurveTypeInvalid && int(t) < len(curveTypeStrings) }

func CurveTypeFromString(s string) CurveType { return CurveType(enumFromString(curveTypeStrings[:], s)) }

// SurfaceType selects how a surface is drawn.
type SurfaceType int8

const (
	SurfaceTypeInvalid = SurfaceType(iota)
	SurfaceTypeParametricCurve
	SurfaceTypeSurfaceMesh
	SurfaceTypeSurfaceContour
	SurfaceTypeContour
	SurfaceTypeHeatMap
	SurfaceTypeStackedCurves
	SurfaceTypeBar
)

var surfaceTypeStrings = [...]string{
	SurfaceTypeInvalid:         "invalid SurfaceType value",
	SurfaceTypeParametricCurve: "parametricCurve",
	SurfaceTypeSurfaceMesh:     "surfaceMesh",
	SurfaceTypeSurfaceContour:  "surfaceContour",
	SurfaceTypeContour:         "contour",
	SurfaceTypeHeatMap:         "heatMap",
	SurfaceTypeStackedCurves:   "stackedCurves",
	SurfaceTypeBar:             "bar",
}

func (t SurfaceType) String() string { return enumString(surfaceTypeStrings[:], int(t)) }
func (t SurfaceType) IsValid() bool  { return t > SurfaceTypeInvalid && int(t) < len(surfaceTypeStrings) }

func SurfaceTypeFromString(s string) SurfaceType {
	return SurfaceType(enumFromString(surfaceTypeStrings[:], s))
}

func enumString(strings []string, i int) string {
	if i <= 0 || i >= len(strings) {
		return strings[0]
	}
	return strings[i]
}

// enumFromString returns 0, the INVALID member, when s is not listed.
func enumFromString(strings []string, s string) int8 {
	for i := 1; i < len(strings); i++ {
		if strings[i] == s {
			return int8(i)
		}
	}
	return 0
}

func errInvalidEnum(what, s string) error { return errInvalidValue(what, s) }
