package catalog

import "strings"

type Icon int

const (
	IconCode Icon = iota
	IconBinary
	IconGlobe
	IconBrain
	IconDatabase
)

var iconGlyphs = map[Icon]string{
	IconCode:     "Code2",
	IconBinary:   "Binary",
	IconGlobe:    "Globe",
	IconBrain:    "Brain",
	IconDatabase: "Database",
}

// ParseIcon maps a catalog tag to its icon. Unknown tags fall back to IconCode.
func ParseIcon(tag string) Icon {
	tag = strings.TrimSpace(tag)
	for icon, glyph := range iconGlyphs {
		if strings.EqualFold(glyph, tag) {
			return icon
		}
	}
	return IconCode
}

func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return iconGlyphs[IconCode]
}

func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.Glyph()), nil
}
