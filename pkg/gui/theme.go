package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Themes should stick to the xterm 256 color palette so they render the same
// on terminals without true color support.

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name    string      `json:"name"`
	Well    tcell.Color `json:"well"`
	Border  tcell.Color `json:"border"`
	Label   tcell.Color `json:"label"`
	Value   tcell.Color `json:"value"`
	Legend  tcell.Color `json:"legend"`
	Banner  tcell.Color `json:"banner"`
	BannerB tcell.Color `json:"bannerBg"`
	Cyan    tcell.Color `json:"cyan"`
	Yellow  tcell.Color `json:"yellow"`
	Magenta tcell.Color `json:"magenta"`
	Green   tcell.Color `json:"green"`
	Red     tcell.Color `json:"red"`
	Blue    tcell.Color `json:"blue"`
	Orange  tcell.Color `json:"orange"`
}

// ThemeHex is the form themes are stored in
type ThemeHex struct {
	Name    string `json:"name"`
	Well    string `json:"well"`
	Border  string `json:"border"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Legend  string `json:"legend"`
	Banner  string `json:"banner"`
	BannerB string `json:"bannerBg"`
	Cyan    string `json:"cyan"`
	Yellow  string `json:"yellow"`
	Magenta string `json:"magenta"`
	Green   string `json:"green"`
	Red     string `json:"red"`
	Blue    string `json:"blue"`
	Orange  string `json:"orange"`
}

// fmtHex returns a one character hex for ColorDefault so that it survives a
// round trip instead of being read back as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Well.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Value.Hex()),
		fmtHex(t.Legend.Hex()),
		fmtHex(t.Banner.Hex()),
		fmtHex(t.BannerB.Hex()),
		fmtHex(t.Cyan.Hex()),
		fmtHex(t.Yellow.Hex()),
		fmtHex(t.Magenta.Hex()),
		fmtHex(t.Green.Hex()),
		fmtHex(t.Red.Hex()),
		fmtHex(t.Blue.Hex()),
		fmtHex(t.Orange.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Well),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Value),
		tcell.GetColor(t.Legend),
		tcell.GetColor(t.Banner),
		tcell.GetColor(t.BannerB),
		tcell.GetColor(t.Cyan),
		tcell.GetColor(t.Yellow),
		tcell.GetColor(t.Magenta),
		tcell.GetColor(t.Green),
		tcell.GetColor(t.Red),
		tcell.GetColor(t.Blue),
		tcell.GetColor(t.Orange),
	}
}

// Validate rejects colors that are neither "#0", a W3C name nor a #rrggbb hex
func (t ThemeHex) Validate() error {
	for _, c := range []string{t.Well, t.Border, t.Label, t.Value, t.Legend, t.Banner, t.BannerB,
		t.Cyan, t.Yellow, t.Magenta, t.Green, t.Red, t.Blue, t.Orange} {
		if c == "#0" {
			continue
		} else if _, ok := tcell.ColorNames[c]; ok {
			continue
		} else if _, err := colorful.Hex(c); err != nil {
			return fmt.Errorf("theme %q: invalid color %q: %w", t.Name, c, err)
		} else if len(c) != 7 {
			return fmt.Errorf("theme %q: color %q is not in #rrggbb form", t.Name, c)
		}
	}

	return nil
}

// Block returns the color cells tagged b are drawn with
func (t Theme) Block(b mino.Block) tcell.Color {
	switch b {
	case mino.BlockSolidCyan:
		return t.Cyan
	case mino.BlockSolidYellow:
		return t.Yellow
	case mino.BlockSolidMagenta:
		return t.Magenta
	case mino.BlockSolidGreen:
		return t.Green
	case mino.BlockSolidRed:
		return t.Red
	case mino.BlockSolidBlue:
		return t.Blue
	case mino.BlockSolidOrange:
		return t.Orange
	default:
		return t.Well
	}
}

// Ghost returns the block color faded toward the well, for the landing
// outline of the falling piece
func (t Theme) Ghost(b mino.Block) tcell.Color {
	return blend(t.Block(b), t.Well, 0.7)
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func blend(c1, c2 tcell.Color, t float64) tcell.Color {
	r, g, b := toColorful(c1).BlendLab(toColorful(c2), t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// colorTag returns the tview color tag selecting c
func colorTag(c tcell.Color) string {
	if c.Hex() < 0 {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

var ErrNoTheme = errors.New("theme: no theme found")

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			if err := t.Validate(); err != nil {
				return Theme{}, err
			}
			return t.Theme(), nil
		}
	}

	return Theme{}, ErrNoTheme
}

// FindTheme looks want up in the provided themes first, then in the built in
// ones
func FindTheme(want string, themes []ThemeHex) (Theme, error) {
	if t, err := ImportThemes(want, themes); err == nil {
		return t, nil
	} else if !errors.Is(err, ErrNoTheme) {
		return Theme{}, err
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("theme: no theme named %q", want)
}

// LoadThemes reads a JSON array of ThemeHex records
func LoadThemes(r io.Reader) ([]ThemeHex, error) {
	var themes []ThemeHex
	if err := json.NewDecoder(r).Decode(&themes); err != nil {
		return nil, fmt.Errorf("theme: decode: %w", err)
	}

	return themes, nil
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color234,     // Well
	tcell.Color247,     // Border
	tcell.Color247,     // Label
	tcell.ColorDefault, // Value
	tcell.Color240,     // Legend
	tcell.Color232,     // Banner
	tcell.Color226,     // BannerB
	tcell.Color51,      // Cyan
	tcell.Color226,     // Yellow
	tcell.Color201,     // Magenta
	tcell.Color46,      // Green
	tcell.Color196,     // Red
	tcell.Color27,      // Blue
	tcell.Color208,     // Orange
}

// ThemeMono is for terminals with a light background or few colors
var ThemeMono = Theme{
	"mono",         // Name
	tcell.Color255, // Well
	tcell.Color240, // Border
	tcell.Color240, // Label
	tcell.Color232, // Value
	tcell.Color245, // Legend
	tcell.Color255, // Banner
	tcell.Color232, // BannerB
	tcell.Color232, // Cyan
	tcell.Color236, // Yellow
	tcell.Color238, // Magenta
	tcell.Color240, // Green
	tcell.Color242, // Red
	tcell.Color244, // Blue
	tcell.Color246, // Orange
}

var Themes = []Theme{ThemeBasic, ThemeMono}
