package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

// Board icons shared by text backends
const (
	IconAgent    = "●"
	IconWall     = "▒"
	IconDoorGap  = "·"
	IconColorSw  = "◆"
	IconDoorSw   = "◇"
	IconFloor    = " "
	IconFloorAlt = "."
)

var (
	ColorTile    color.Style
	ColorAction  color.Style
	ColorDenied  color.Style
	ColorSubtle  color.Style
	ColorColorSw color.Style
	ColorDoorSw  color.Style

	regexpStringFunctions *regexp.Regexp
)

// InitColors initializes the color styles
func InitColors() {
	ColorTile = color.Style{color.FgGray}
	ColorAction = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorColorSw = color.Style{color.FgYellow, color.OpBold}
	ColorDoorSw = color.Style{color.FgMagenta}

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:%.-]+)}`)
}

// AgentColor returns a gookit style for an RGB agent color.
func AgentColor(r, g, b uint8) color.RGBColor {
	return color.RGB(r, g, b)
}

// FormatString formats a string with special markup: GT{msgid} runs the text
// through gettext, ACTION{x} highlights a key, TILE{x} styles a tile name,
// DENIED{x} styles a refusal.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	if regexpStringFunctions == nil {
		return ret
	}

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = gotext.Get(operand)
		case "ACTION":
			val = ColorAction.Sprintf(operand)
		case "TILE":
			val = ColorTile.Sprintf(operand)
		case "DENIED":
			val = ColorDenied.Sprintf(operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// PrintString prints a formatted string
func PrintString(msg string, a ...any) {
	fmt.Print(FormatString(msg, a...))
}
