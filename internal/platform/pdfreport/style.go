package pdfreport

import (
	"strconv"
	"strings"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B int
}

var (
	White     = Color{255, 255, 255}
	Black     = Color{0, 0, 0}
	Grey      = Color{128, 128, 128}
	LightGrey = Color{211, 211, 211}
)

// Hex parses "#rrggbb" (the leading # is optional). Malformed input is black.
func Hex(v string) Color {
	v = strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(v) != 6 {
		return Black
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Black
	}
	return Color{R: int(n >> 16 & 0xff), G: int(n >> 8 & 0xff), B: int(n & 0xff)}
}

// Align is a horizontal alignment for table body cells.
type Align string

const (
	AlignCenter Align = "C"
	AlignLeft   Align = "L"
	AlignRight  Align = "R"
)

// TableStyle controls table colors, fonts and spacing. Zero fields fall back
// to DefaultTableStyle.
type TableStyle struct {
	HeaderFill          Color
	HeaderText          Color
	HeaderFontSize      float64
	BodyText            Color
	BodyFontSize        float64
	ZebraFills          []Color
	GridColor           Color
	GridWidth           float64
	BorderColor         Color
	BorderWidth         float64
	PaddingX            float64
	PaddingY            float64
	HeaderPaddingBottom float64
	RepeatHeader        bool
}

// DefaultTableStyle is the neutral grid used by most reports.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		HeaderFill:          Hex("#f2f2f2"),
		HeaderText:          Hex("#222222"),
		HeaderFontSize:      11,
		BodyText:            Hex("#222222"),
		BodyFontSize:        10,
		ZebraFills:          []Color{White, Hex("#fbfbfb")},
		GridColor:           Hex("#cccccc"),
		GridWidth:           0.5,
		PaddingX:            6,
		PaddingY:            4,
		HeaderPaddingBottom: 8,
		RepeatHeader:        true,
	}
}

// LeadersTopStyle highlights the podium table.
func LeadersTopStyle() TableStyle {
	style := DefaultTableStyle()
	style.HeaderFill = Hex("#0f172a")
	style.HeaderText = White
	style.HeaderFontSize = 12
	style.ZebraFills = []Color{White}
	style.GridColor = Grey
	style.GridWidth = 0.5
	style.BorderColor = Grey
	style.BorderWidth = 0.75
	return style
}

// LeadersRankingStyle is the lighter table under the podium.
func LeadersRankingStyle() TableStyle {
	style := DefaultTableStyle()
	style.HeaderFill = Hex("#f8fafc")
	style.HeaderText = Black
	style.ZebraFills = []Color{White}
	style.GridColor = LightGrey
	style.GridWidth = 0.25
	style.BorderColor = LightGrey
	style.BorderWidth = 0.75
	return style
}

func (s TableStyle) normalized() TableStyle {
	def := DefaultTableStyle()
	if s.HeaderFontSize <= 0 {
		s.HeaderFontSize = def.HeaderFontSize
	}
	if s.BodyFontSize <= 0 {
		s.BodyFontSize = def.BodyFontSize
	}
	if len(s.ZebraFills) == 0 {
		s.ZebraFills = def.ZebraFills
	}
	if s.GridWidth <= 0 {
		s.GridWidth = def.GridWidth
	}
	if s.PaddingX <= 0 {
		s.PaddingX = def.PaddingX
	}
	if s.PaddingY <= 0 {
		s.PaddingY = def.PaddingY
	}
	if s.HeaderPaddingBottom <= 0 {
		s.HeaderPaddingBottom = s.PaddingY
	}
	return s
}
