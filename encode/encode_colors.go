package encode

import "github.com/fatih/color"

type ColorAttr int

const (
	commentColor ColorAttr = iota
	nameColor
	keyColor
	stringColor
	numberColor
	boolColor
	punctColor
)

type Colors struct {
	Map map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Map: map[ColorAttr]func(string, ...any) string{
			commentColor: color.BlueString,
			nameColor:    color.RGB(196, 96, 16).SprintfFunc(),
			keyColor:     color.RGB(128, 168, 196).SprintfFunc(),
			stringColor:  color.GreenString,
			numberColor:  color.RGB(128, 216, 236).SprintfFunc(),
			boolColor:    color.CyanString,
			punctColor:   color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func (es *EncState) color(attr ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	f, ok := es.colors.Map[attr]
	if !ok {
		return s
	}
	return f("%s", s)
}
