package render

import "image/color"

// Theme selects a color scheme.
type Theme int

const (
	// ThemeLight is a white background scheme.
	ThemeLight Theme = iota
	// ThemeDark is a dark background scheme.
	ThemeDark
)

// Colors defines the scheme for rendering symbol geometry.
type Colors struct {
	Background color.NRGBA
	Grid       color.NRGBA

	Body color.NRGBA
	Fill color.NRGBA
	Text color.NRGBA

	Anchor     color.NRGBA
	AnchorText color.NRGBA
}

// GetColors returns the scheme for the given theme.
func GetColors(theme Theme) *Colors {
	if theme == ThemeDark {
		return &Colors{
			Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
			Grid:       color.NRGBA{R: 60, G: 60, B: 60, A: 255},

			Body: color.NRGBA{R: 255, G: 100, B: 100, A: 255},
			Fill: color.NRGBA{R: 60, G: 60, B: 0, A: 128},
			Text: color.NRGBA{R: 255, G: 255, B: 255, A: 255},

			Anchor:     color.NRGBA{R: 0, G: 255, B: 0, A: 255},
			AnchorText: color.NRGBA{R: 100, G: 255, B: 255, A: 255},
		}
	}
	return &Colors{
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Grid:       color.NRGBA{R: 220, G: 220, B: 220, A: 255},

		Body: color.NRGBA{R: 132, G: 0, B: 0, A: 255},
		Fill: color.NRGBA{R: 255, G: 255, B: 194, A: 128},
		Text: color.NRGBA{R: 0, G: 0, B: 0, A: 255},

		Anchor:     color.NRGBA{R: 0, G: 132, B: 0, A: 255},
		AnchorText: color.NRGBA{R: 0, G: 100, B: 100, A: 255},
	}
}

// String returns the theme name.
func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return "Unknown"
	}
}
