package render

type LineStyle struct {
	Color Color   `yaml:"color"`
	Width float64 `yaml:"width"`
}

type PointStyle struct {
	Fill        Color   `yaml:"fill"`
	Stroke      Color   `yaml:"stroke"`
	StrokeWidth float64 `yaml:"strokeWidth"`
	Radius      float64 `yaml:"radius"`
}

type LabelStyle struct {
	Color Color   `yaml:"color"`
	Size  float64 `yaml:"size"`
	// Gap between the top of a point and the center of its label
	Offset float64 `yaml:"offset"`
}

// Every color and width the renderer uses. Nothing below the renderer knows
// about any of this.
type Theme struct {
	Background Color `yaml:"background"`

	Extension              LineStyle `yaml:"extension"`
	Side                   LineStyle `yaml:"side"`
	PrimaryPerpendicular   LineStyle `yaml:"primaryPerpendicular"`
	SecondaryPerpendicular LineStyle `yaml:"secondaryPerpendicular"`
	Collinearity           LineStyle `yaml:"collinearity"`

	Vertex         PointStyle `yaml:"vertex"`
	AltitudeFoot   PointStyle `yaml:"altitudeFoot"`
	CollinearPoint PointStyle `yaml:"collinearPoint"`
	Label          LabelStyle `yaml:"label"`

	// How far faded extensions run past each end of a line
	ExtensionLength float64 `yaml:"extensionLength"`

	// When false, derived points take the vertex colors and only their radius
	// differs.
	ColorByRole bool `yaml:"colorByRole"`
}

func DefaultTheme() Theme {
	return Theme{
		Background: MustParseColor("#ffffff"),

		Extension:              LineStyle{Color: MustParseColor("#96969680"), Width: 1},
		Side:                   LineStyle{Color: MustParseColor("#333333"), Width: 2},
		PrimaryPerpendicular:   LineStyle{Color: MustParseColor("#e91e63"), Width: 1.5},
		SecondaryPerpendicular: LineStyle{Color: MustParseColor("#9c27b0"), Width: 1.5},
		Collinearity:           LineStyle{Color: MustParseColor("#ff9800"), Width: 2},

		Vertex: PointStyle{
			Fill:        MustParseColor("#2196f3"),
			Stroke:      MustParseColor("#1976d2"),
			StrokeWidth: 2,
			Radius:      8,
		},
		AltitudeFoot: PointStyle{
			Fill:        MustParseColor("#e91e63"),
			Stroke:      MustParseColor("#c2185b"),
			StrokeWidth: 2,
			Radius:      6,
		},
		CollinearPoint: PointStyle{
			Fill:        MustParseColor("#ff9800"),
			Stroke:      MustParseColor("#f57c00"),
			StrokeWidth: 2,
			Radius:      6,
		},
		Label: LabelStyle{Color: MustParseColor("#000000"), Size: 16, Offset: 12},

		ExtensionLength: 1000,
	}
}

// The style a point is drawn with once ColorByRole is taken into account.
func (t Theme) pointStyle(role PointStyle) PointStyle {
	if t.ColorByRole {
		return role
	}
	style := t.Vertex
	style.Radius = role.Radius
	return style
}
