package css

import (
	"strconv"
	"strings"
)

// Style holds the computed style properties a positioning engine reads:
// position, overflow, z-index, zoom, transform, and the inline left/top
// it commits. Cascade and selector matching are the embedder's business;
// this package only models the resolved property map.
type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// ParseLength parses a length value (e.g., "100px" or "100")
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// Position type constants
type PositionType string

const (
	PositionStatic   PositionType = "static"
	PositionRelative PositionType = "relative"
	PositionAbsolute PositionType = "absolute"
	PositionFixed    PositionType = "fixed"
)

// GetPosition returns the position type (default: static)
func (s *Style) GetPosition() PositionType {
	if pos, ok := s.Get("position"); ok {
		switch pos {
		case "relative":
			return PositionRelative
		case "absolute":
			return PositionAbsolute
		case "fixed":
			return PositionFixed
		}
	}
	return PositionStatic
}

// IsPositioned returns true if position != static.
func (s *Style) IsPositioned() bool {
	return s.GetPosition() != PositionStatic
}

// Overflow values relevant to scroll-parent discovery.
type OverflowType string

const (
	OverflowVisible OverflowType = "visible"
	OverflowHidden  OverflowType = "hidden"
	OverflowAuto    OverflowType = "auto"
	OverflowScroll  OverflowType = "scroll"
)

// GetOverflowX returns the horizontal overflow value. overflow-x wins
// over the overflow shorthand; the default is visible.
func (s *Style) GetOverflowX() OverflowType {
	return s.overflow("overflow-x")
}

// GetOverflowY returns the vertical overflow value.
func (s *Style) GetOverflowY() OverflowType {
	return s.overflow("overflow-y")
}

func (s *Style) overflow(axisProperty string) OverflowType {
	val, ok := s.Get(axisProperty)
	if !ok {
		val, ok = s.Get("overflow")
	}
	if ok {
		switch val {
		case "hidden":
			return OverflowHidden
		case "auto":
			return OverflowAuto
		case "scroll":
			return OverflowScroll
		}
	}
	return OverflowVisible
}

// IsScrollable returns true when either axis has overflow auto or scroll.
func (s *Style) IsScrollable() bool {
	for _, o := range []OverflowType{s.GetOverflowX(), s.GetOverflowY()} {
		if o == OverflowAuto || o == OverflowScroll {
			return true
		}
	}
	return false
}

// GetZIndex returns the numeric z-index and true, or (0, false) when the
// value is auto or absent. Stacking scans need the auto distinction, so
// there is no defaulted form.
func (s *Style) GetZIndex() (int, bool) {
	val, ok := s.Get("z-index")
	if !ok || val == "auto" {
		return 0, false
	}
	z, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, false
	}
	return z, true
}

// GetZoom returns the zoom factor (default: 1). Non-positive and
// unparseable values are treated as 1.
func (s *Style) GetZoom() float64 {
	val, ok := s.Get("zoom")
	if !ok {
		return 1
	}
	val = strings.TrimSpace(val)
	if strings.HasSuffix(val, "%") {
		if pct, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64); err == nil && pct > 0 {
			return pct / 100
		}
		return 1
	}
	z, err := strconv.ParseFloat(val, 64)
	if err != nil || z <= 0 {
		return 1
	}
	return z
}

// GetTransformScale returns the per-axis scale factors from the transform
// property. Supported forms: scale(s), scale(sx, sy), scaleX(sx),
// scaleY(sy). Anything else (including none) yields (1, 1).
func (s *Style) GetTransformScale() (float64, float64) {
	val, ok := s.Get("transform")
	if !ok || val == "none" {
		return 1, 1
	}
	val = strings.TrimSpace(val)
	open := strings.IndexByte(val, '(')
	closing := strings.IndexByte(val, ')')
	if open < 0 || closing < open {
		return 1, 1
	}
	fn := strings.TrimSpace(val[:open])
	args := strings.Split(val[open+1:closing], ",")
	parse := func(i int) (float64, bool) {
		if i >= len(args) {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(args[i]), 64)
		return f, err == nil
	}
	switch fn {
	case "scale":
		sx, okX := parse(0)
		if !okX {
			return 1, 1
		}
		if sy, okY := parse(1); okY {
			return sx, sy
		}
		return sx, sx
	case "scaleX":
		if sx, ok := parse(0); ok {
			return sx, 1
		}
	case "scaleY":
		if sy, ok := parse(0); ok {
			return 1, sy
		}
	}
	return 1, 1
}

// ParseInlineStyle parses a style attribute ("position: absolute; z-index: 5")
// into a Style.
func ParseInlineStyle(styleAttr string) *Style {
	style := NewStyle()
	declarations := strings.Split(styleAttr, ";")
	for _, decl := range declarations {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.TrimSpace(strings.ToLower(parts[0]))
		value := strings.TrimSpace(parts[1])
		style.Set(property, value)
	}
	return style
}
