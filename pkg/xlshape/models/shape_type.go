package models

import (
	"fmt"
)

// ShapeType is a DrawingML preset geometry (ST_ShapeType). Values are 1-based in
// schema order so they can be exchanged as plain integers; the zero value is not
// a valid geometry.
type ShapeType int

// Preset geometries, in ST_ShapeType order.
const (
	ShapeTypeLine ShapeType = iota + 1
	ShapeTypeLineInv
	ShapeTypeTriangle
	ShapeTypeRtTriangle
	ShapeTypeRect
	ShapeTypeDiamond
	ShapeTypeParallelogram
	ShapeTypeTrapezoid
	ShapeTypeNonIsoscelesTrapezoid
	ShapeTypePentagon
	ShapeTypeHexagon
	ShapeTypeHeptagon
	ShapeTypeOctagon
	ShapeTypeDecagon
	ShapeTypeDodecagon
	ShapeTypeStar4
	ShapeTypeStar5
	ShapeTypeStar6
	ShapeTypeStar7
	ShapeTypeStar8
	ShapeTypeStar10
	ShapeTypeStar12
	ShapeTypeStar16
	ShapeTypeStar24
	ShapeTypeStar32
	ShapeTypeRoundRect
	ShapeTypeRound1Rect
	ShapeTypeRound2SameRect
	ShapeTypeRound2DiagRect
	ShapeTypeSnipRoundRect
	ShapeTypeSnip1Rect
	ShapeTypeSnip2SameRect
	ShapeTypeSnip2DiagRect
	ShapeTypePlaque
	ShapeTypeEllipse
	ShapeTypeTeardrop
	ShapeTypeHomePlate
	ShapeTypeChevron
	ShapeTypePieWedge
	ShapeTypePie
	ShapeTypeBlockArc
	ShapeTypeDonut
	ShapeTypeNoSmoking
	ShapeTypeRightArrow
	ShapeTypeLeftArrow
	ShapeTypeUpArrow
	ShapeTypeDownArrow
	ShapeTypeStripedRightArrow
	ShapeTypeNotchedRightArrow
	ShapeTypeBentUpArrow
	ShapeTypeLeftRightArrow
	ShapeTypeUpDownArrow
	ShapeTypeLeftUpArrow
	ShapeTypeLeftRightUpArrow
	ShapeTypeQuadArrow
	ShapeTypeLeftArrowCallout
	ShapeTypeRightArrowCallout
	ShapeTypeUpArrowCallout
	ShapeTypeDownArrowCallout
	ShapeTypeLeftRightArrowCallout
	ShapeTypeUpDownArrowCallout
	ShapeTypeQuadArrowCallout
	ShapeTypeBentArrow
	ShapeTypeUturnArrow
	ShapeTypeCircularArrow
	ShapeTypeLeftCircularArrow
	ShapeTypeLeftRightCircularArrow
	ShapeTypeCurvedRightArrow
	ShapeTypeCurvedLeftArrow
	ShapeTypeCurvedUpArrow
	ShapeTypeCurvedDownArrow
	ShapeTypeSwooshArrow
	ShapeTypeCube
	ShapeTypeCan
	ShapeTypeLightningBolt
	ShapeTypeHeart
	ShapeTypeSun
	ShapeTypeMoon
	ShapeTypeSmileyFace
	ShapeTypeIrregularSeal1
	ShapeTypeIrregularSeal2
	ShapeTypeFoldedCorner
	ShapeTypeBevel
	ShapeTypeFrame
	ShapeTypeHalfFrame
	ShapeTypeCorner
	ShapeTypeDiagStripe
	ShapeTypeChord
	ShapeTypeArc
	ShapeTypeLeftBracket
	ShapeTypeRightBracket
	ShapeTypeLeftBrace
	ShapeTypeRightBrace
	ShapeTypeBracketPair
	ShapeTypeBracePair
	ShapeTypeStraightConnector1
	ShapeTypeBentConnector2
	ShapeTypeBentConnector3
	ShapeTypeBentConnector4
	ShapeTypeBentConnector5
	ShapeTypeCurvedConnector2
	ShapeTypeCurvedConnector3
	ShapeTypeCurvedConnector4
	ShapeTypeCurvedConnector5
	ShapeTypeCallout1
	ShapeTypeCallout2
	ShapeTypeCallout3
	ShapeTypeAccentCallout1
	ShapeTypeAccentCallout2
	ShapeTypeAccentCallout3
	ShapeTypeBorderCallout1
	ShapeTypeBorderCallout2
	ShapeTypeBorderCallout3
	ShapeTypeAccentBorderCallout1
	ShapeTypeAccentBorderCallout2
	ShapeTypeAccentBorderCallout3
	ShapeTypeWedgeRectCallout
	ShapeTypeWedgeRoundRectCallout
	ShapeTypeWedgeEllipseCallout
	ShapeTypeCloudCallout
	ShapeTypeCloud
	ShapeTypeRibbon
	ShapeTypeRibbon2
	ShapeTypeEllipseRibbon
	ShapeTypeEllipseRibbon2
	ShapeTypeLeftRightRibbon
	ShapeTypeVerticalScroll
	ShapeTypeHorizontalScroll
	ShapeTypeWave
	ShapeTypeDoubleWave
	ShapeTypePlus
	ShapeTypeFlowChartProcess
	ShapeTypeFlowChartDecision
	ShapeTypeFlowChartInputOutput
	ShapeTypeFlowChartPredefinedProcess
	ShapeTypeFlowChartInternalStorage
	ShapeTypeFlowChartDocument
	ShapeTypeFlowChartMultidocument
	ShapeTypeFlowChartTerminator
	ShapeTypeFlowChartPreparation
	ShapeTypeFlowChartManualInput
	ShapeTypeFlowChartManualOperation
	ShapeTypeFlowChartConnector
	ShapeTypeFlowChartPunchedCard
	ShapeTypeFlowChartPunchedTape
	ShapeTypeFlowChartSummingJunction
	ShapeTypeFlowChartOr
	ShapeTypeFlowChartCollate
	ShapeTypeFlowChartSort
	ShapeTypeFlowChartExtract
	ShapeTypeFlowChartMerge
	ShapeTypeFlowChartOfflineStorage
	ShapeTypeFlowChartOnlineStorage
	ShapeTypeFlowChartMagneticTape
	ShapeTypeFlowChartMagneticDisk
	ShapeTypeFlowChartMagneticDrum
	ShapeTypeFlowChartDisplay
	ShapeTypeFlowChartDelay
	ShapeTypeFlowChartAlternateProcess
	ShapeTypeFlowChartOffpageConnector
	ShapeTypeActionButtonBlank
	ShapeTypeActionButtonHome
	ShapeTypeActionButtonHelp
	ShapeTypeActionButtonInformation
	ShapeTypeActionButtonForwardNext
	ShapeTypeActionButtonBackPrevious
	ShapeTypeActionButtonEnd
	ShapeTypeActionButtonBeginning
	ShapeTypeActionButtonReturn
	ShapeTypeActionButtonDocument
	ShapeTypeActionButtonSound
	ShapeTypeActionButtonMovie
	ShapeTypeGear6
	ShapeTypeGear9
	ShapeTypeFunnel
	ShapeTypeMathPlus
	ShapeTypeMathMinus
	ShapeTypeMathMultiply
	ShapeTypeMathDivide
	ShapeTypeMathEqual
	ShapeTypeMathNotEqual
	ShapeTypeCornerTabs
	ShapeTypeSquareTabs
	ShapeTypePlaqueTabs
	ShapeTypeChartX
	ShapeTypeChartStar
	ShapeTypeChartPlus
)

var shapeTypeNames = [...]string{
	ShapeTypeLine:                       "line",
	ShapeTypeLineInv:                    "lineInv",
	ShapeTypeTriangle:                   "triangle",
	ShapeTypeRtTriangle:                 "rtTriangle",
	ShapeTypeRect:                       "rect",
	ShapeTypeDiamond:                    "diamond",
	ShapeTypeParallelogram:              "parallelogram",
	ShapeTypeTrapezoid:                  "trapezoid",
	ShapeTypeNonIsoscelesTrapezoid:      "nonIsoscelesTrapezoid",
	ShapeTypePentagon:                   "pentagon",
	ShapeTypeHexagon:                    "hexagon",
	ShapeTypeHeptagon:                   "heptagon",
	ShapeTypeOctagon:                    "octagon",
	ShapeTypeDecagon:                    "decagon",
	ShapeTypeDodecagon:                  "dodecagon",
	ShapeTypeStar4:                      "star4",
	ShapeTypeStar5:                      "star5",
	ShapeTypeStar6:                      "star6",
	ShapeTypeStar7:                      "star7",
	ShapeTypeStar8:                      "star8",
	ShapeTypeStar10:                     "star10",
	ShapeTypeStar12:                     "star12",
	ShapeTypeStar16:                     "star16",
	ShapeTypeStar24:                     "star24",
	ShapeTypeStar32:                     "star32",
	ShapeTypeRoundRect:                  "roundRect",
	ShapeTypeRound1Rect:                 "round1Rect",
	ShapeTypeRound2SameRect:             "round2SameRect",
	ShapeTypeRound2DiagRect:             "round2DiagRect",
	ShapeTypeSnipRoundRect:              "snipRoundRect",
	ShapeTypeSnip1Rect:                  "snip1Rect",
	ShapeTypeSnip2SameRect:              "snip2SameRect",
	ShapeTypeSnip2DiagRect:              "snip2DiagRect",
	ShapeTypePlaque:                     "plaque",
	ShapeTypeEllipse:                    "ellipse",
	ShapeTypeTeardrop:                   "teardrop",
	ShapeTypeHomePlate:                  "homePlate",
	ShapeTypeChevron:                    "chevron",
	ShapeTypePieWedge:                   "pieWedge",
	ShapeTypePie:                        "pie",
	ShapeTypeBlockArc:                   "blockArc",
	ShapeTypeDonut:                      "donut",
	ShapeTypeNoSmoking:                  "noSmoking",
	ShapeTypeRightArrow:                 "rightArrow",
	ShapeTypeLeftArrow:                  "leftArrow",
	ShapeTypeUpArrow:                    "upArrow",
	ShapeTypeDownArrow:                  "downArrow",
	ShapeTypeStripedRightArrow:          "stripedRightArrow",
	ShapeTypeNotchedRightArrow:          "notchedRightArrow",
	ShapeTypeBentUpArrow:                "bentUpArrow",
	ShapeTypeLeftRightArrow:             "leftRightArrow",
	ShapeTypeUpDownArrow:                "upDownArrow",
	ShapeTypeLeftUpArrow:                "leftUpArrow",
	ShapeTypeLeftRightUpArrow:           "leftRightUpArrow",
	ShapeTypeQuadArrow:                  "quadArrow",
	ShapeTypeLeftArrowCallout:           "leftArrowCallout",
	ShapeTypeRightArrowCallout:          "rightArrowCallout",
	ShapeTypeUpArrowCallout:             "upArrowCallout",
	ShapeTypeDownArrowCallout:           "downArrowCallout",
	ShapeTypeLeftRightArrowCallout:      "leftRightArrowCallout",
	ShapeTypeUpDownArrowCallout:         "upDownArrowCallout",
	ShapeTypeQuadArrowCallout:           "quadArrowCallout",
	ShapeTypeBentArrow:                  "bentArrow",
	ShapeTypeUturnArrow:                 "uturnArrow",
	ShapeTypeCircularArrow:              "circularArrow",
	ShapeTypeLeftCircularArrow:          "leftCircularArrow",
	ShapeTypeLeftRightCircularArrow:     "leftRightCircularArrow",
	ShapeTypeCurvedRightArrow:           "curvedRightArrow",
	ShapeTypeCurvedLeftArrow:            "curvedLeftArrow",
	ShapeTypeCurvedUpArrow:              "curvedUpArrow",
	ShapeTypeCurvedDownArrow:            "curvedDownArrow",
	ShapeTypeSwooshArrow:                "swooshArrow",
	ShapeTypeCube:                       "cube",
	ShapeTypeCan:                        "can",
	ShapeTypeLightningBolt:              "lightningBolt",
	ShapeTypeHeart:                      "heart",
	ShapeTypeSun:                        "sun",
	ShapeTypeMoon:                       "moon",
	ShapeTypeSmileyFace:                 "smileyFace",
	ShapeTypeIrregularSeal1:             "irregularSeal1",
	ShapeTypeIrregularSeal2:             "irregularSeal2",
	ShapeTypeFoldedCorner:               "foldedCorner",
	ShapeTypeBevel:                      "bevel",
	ShapeTypeFrame:                      "frame",
	ShapeTypeHalfFrame:                  "halfFrame",
	ShapeTypeCorner:                     "corner",
	ShapeTypeDiagStripe:                 "diagStripe",
	ShapeTypeChord:                      "chord",
	ShapeTypeArc:                        "arc",
	ShapeTypeLeftBracket:                "leftBracket",
	ShapeTypeRightBracket:               "rightBracket",
	ShapeTypeLeftBrace:                  "leftBrace",
	ShapeTypeRightBrace:                 "rightBrace",
	ShapeTypeBracketPair:                "bracketPair",
	ShapeTypeBracePair:                  "bracePair",
	ShapeTypeStraightConnector1:         "straightConnector1",
	ShapeTypeBentConnector2:             "bentConnector2",
	ShapeTypeBentConnector3:             "bentConnector3",
	ShapeTypeBentConnector4:             "bentConnector4",
	ShapeTypeBentConnector5:             "bentConnector5",
	ShapeTypeCurvedConnector2:           "curvedConnector2",
	ShapeTypeCurvedConnector3:           "curvedConnector3",
	ShapeTypeCurvedConnector4:           "curvedConnector4",
	ShapeTypeCurvedConnector5:           "curvedConnector5",
	ShapeTypeCallout1:                   "callout1",
	ShapeTypeCallout2:                   "callout2",
	ShapeTypeCallout3:                   "callout3",
	ShapeTypeAccentCallout1:             "accentCallout1",
	ShapeTypeAccentCallout2:             "accentCallout2",
	ShapeTypeAccentCallout3:             "accentCallout3",
	ShapeTypeBorderCallout1:             "borderCallout1",
	ShapeTypeBorderCallout2:             "borderCallout2",
	ShapeTypeBorderCallout3:             "borderCallout3",
	ShapeTypeAccentBorderCallout1:       "accentBorderCallout1",
	ShapeTypeAccentBorderCallout2:       "accentBorderCallout2",
	ShapeTypeAccentBorderCallout3:       "accentBorderCallout3",
	ShapeTypeWedgeRectCallout:           "wedgeRectCallout",
	ShapeTypeWedgeRoundRectCallout:      "wedgeRoundRectCallout",
	ShapeTypeWedgeEllipseCallout:        "wedgeEllipseCallout",
	ShapeTypeCloudCallout:               "cloudCallout",
	ShapeTypeCloud:                      "cloud",
	ShapeTypeRibbon:                     "ribbon",
	ShapeTypeRibbon2:                    "ribbon2",
	ShapeTypeEllipseRibbon:              "ellipseRibbon",
	ShapeTypeEllipseRibbon2:             "ellipseRibbon2",
	ShapeTypeLeftRightRibbon:            "leftRightRibbon",
	ShapeTypeVerticalScroll:             "verticalScroll",
	ShapeTypeHorizontalScroll:           "horizontalScroll",
	ShapeTypeWave:                       "wave",
	ShapeTypeDoubleWave:                 "doubleWave",
	ShapeTypePlus:                       "plus",
	ShapeTypeFlowChartProcess:           "flowChartProcess",
	ShapeTypeFlowChartDecision:          "flowChartDecision",
	ShapeTypeFlowChartInputOutput:       "flowChartInputOutput",
	ShapeTypeFlowChartPredefinedProcess: "flowChartPredefinedProcess",
	ShapeTypeFlowChartInternalStorage:   "flowChartInternalStorage",
	ShapeTypeFlowChartDocument:          "flowChartDocument",
	ShapeTypeFlowChartMultidocument:     "flowChartMultidocument",
	ShapeTypeFlowChartTerminator:        "flowChartTerminator",
	ShapeTypeFlowChartPreparation:       "flowChartPreparation",
	ShapeTypeFlowChartManualInput:       "flowChartManualInput",
	ShapeTypeFlowChartManualOperation:   "flowChartManualOperation",
	ShapeTypeFlowChartConnector:         "flowChartConnector",
	ShapeTypeFlowChartPunchedCard:       "flowChartPunchedCard",
	ShapeTypeFlowChartPunchedTape:       "flowChartPunchedTape",
	ShapeTypeFlowChartSummingJunction:   "flowChartSummingJunction",
	ShapeTypeFlowChartOr:                "flowChartOr",
	ShapeTypeFlowChartCollate:           "flowChartCollate",
	ShapeTypeFlowChartSort:              "flowChartSort",
	ShapeTypeFlowChartExtract:           "flowChartExtract",
	ShapeTypeFlowChartMerge:             "flowChartMerge",
	ShapeTypeFlowChartOfflineStorage:    "flowChartOfflineStorage",
	ShapeTypeFlowChartOnlineStorage:     "flowChartOnlineStorage",
	ShapeTypeFlowChartMagneticTape:      "flowChartMagneticTape",
	ShapeTypeFlowChartMagneticDisk:      "flowChartMagneticDisk",
	ShapeTypeFlowChartMagneticDrum:      "flowChartMagneticDrum",
	ShapeTypeFlowChartDisplay:           "flowChartDisplay",
	ShapeTypeFlowChartDelay:             "flowChartDelay",
	ShapeTypeFlowChartAlternateProcess:  "flowChartAlternateProcess",
	ShapeTypeFlowChartOffpageConnector:  "flowChartOffpageConnector",
	ShapeTypeActionButtonBlank:          "actionButtonBlank",
	ShapeTypeActionButtonHome:           "actionButtonHome",
	ShapeTypeActionButtonHelp:           "actionButtonHelp",
	ShapeTypeActionButtonInformation:    "actionButtonInformation",
	ShapeTypeActionButtonForwardNext:    "actionButtonForwardNext",
	ShapeTypeActionButtonBackPrevious:   "actionButtonBackPrevious",
	ShapeTypeActionButtonEnd:            "actionButtonEnd",
	ShapeTypeActionButtonBeginning:      "actionButtonBeginning",
	ShapeTypeActionButtonReturn:         "actionButtonReturn",
	ShapeTypeActionButtonDocument:       "actionButtonDocument",
	ShapeTypeActionButtonSound:          "actionButtonSound",
	ShapeTypeActionButtonMovie:          "actionButtonMovie",
	ShapeTypeGear6:                      "gear6",
	ShapeTypeGear9:                      "gear9",
	ShapeTypeFunnel:                     "funnel",
	ShapeTypeMathPlus:                   "mathPlus",
	ShapeTypeMathMinus:                  "mathMinus",
	ShapeTypeMathMultiply:               "mathMultiply",
	ShapeTypeMathDivide:                 "mathDivide",
	ShapeTypeMathEqual:                  "mathEqual",
	ShapeTypeMathNotEqual:               "mathNotEqual",
	ShapeTypeCornerTabs:                 "cornerTabs",
	ShapeTypeSquareTabs:                 "squareTabs",
	ShapeTypePlaqueTabs:                 "plaqueTabs",
	ShapeTypeChartX:                     "chartX",
	ShapeTypeChartStar:                  "chartStar",
	ShapeTypeChartPlus:                  "chartPlus",
}

var shapeTypesByName = func() map[string]ShapeType {
	m := make(map[string]ShapeType, len(shapeTypeNames))
	for i, name := range shapeTypeNames {
		if name != "" {
			m[name] = ShapeType(i)
		}
	}
	return m
}()

// PresetGeomMap maps preset geometry names to human-readable type labels.
var PresetGeomMap = map[string]string{
	"flowChartProcess":           "AutoShape-FlowchartProcess",
	"flowChartDecision":          "AutoShape-FlowchartDecision",
	"flowChartTerminator":        "AutoShape-FlowchartTerminator",
	"flowChartInputOutput":       "AutoShape-FlowchartData",
	"flowChartDocument":          "AutoShape-FlowchartDocument",
	"flowChartMultidocument":     "AutoShape-FlowchartMultidocument",
	"flowChartPredefinedProcess": "AutoShape-FlowchartPredefinedProcess",
	"flowChartInternalStorage":   "AutoShape-FlowchartInternalStorage",
	"flowChartPreparation":       "AutoShape-FlowchartPreparation",
	"flowChartManualInput":       "AutoShape-FlowchartManualInput",
	"flowChartManualOperation":   "AutoShape-FlowchartManualOperation",
	"flowChartConnector":         "AutoShape-FlowchartConnector",
	"flowChartOffpageConnector":  "AutoShape-FlowchartOffpageConnector",
	"rect":                       "AutoShape-Rectangle",
	"roundRect":                  "AutoShape-RoundedRectangle",
	"ellipse":                    "AutoShape-Oval",
	"diamond":                    "AutoShape-Diamond",
	"triangle":                   "AutoShape-IsoscelesTriangle",
	"straightConnector1":         "Line",
	"bentConnector2":             "AutoShape-Connector",
	"bentConnector3":             "AutoShape-Connector",
	"bentConnector4":             "AutoShape-Connector",
	"bentConnector5":             "AutoShape-Connector",
	"curvedConnector2":           "AutoShape-Connector",
	"curvedConnector3":           "AutoShape-Connector",
	"curvedConnector4":           "AutoShape-Connector",
	"curvedConnector5":           "AutoShape-Connector",
	"line":                       "Line",
}

// AllShapeTypes returns every valid preset geometry in enumeration order.
func AllShapeTypes() []ShapeType {
	types := make([]ShapeType, 0, len(shapeTypeNames)-1)
	for i := ShapeTypeLine; int(i) < len(shapeTypeNames); i++ {
		types = append(types, i)
	}
	return types
}

// ParseShapeType returns the ShapeType for a prst token such as "rect".
func ParseShapeType(name string) (ShapeType, error) {
	if t, ok := shapeTypesByName[name]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown preset geometry %q", name)
}

// IsValid reports whether t names a preset geometry.
func (t ShapeType) IsValid() bool {
	return t > 0 && int(t) < len(shapeTypeNames)
}

// String returns the prst token, e.g. "rect".
func (t ShapeType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("ShapeType(%d)", int(t))
	}
	return shapeTypeNames[t]
}

// Label returns a human-readable type label, e.g. "AutoShape-Rectangle".
func (t ShapeType) Label() string {
	if !t.IsValid() {
		return "Unknown"
	}
	if label, ok := PresetGeomMap[shapeTypeNames[t]]; ok {
		return label
	}
	return "AutoShape-" + shapeTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t ShapeType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid shape type %d", int(t))
	}
	return []byte(shapeTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ShapeType) UnmarshalText(text []byte) error {
	parsed, err := ParseShapeType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
