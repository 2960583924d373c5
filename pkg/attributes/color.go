package attributes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var ErrUnknownColor = errors.New("unknown color")

// ParseColor accepts #RRGGBB, RRGGBB, #RGB, #AARRGGBB (alpha is dropped) and SVG colour names
func ParseColor(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrUnknownColor
	}

	if named, exists := colornames.Map[strings.ToLower(text)]; exists {
		return int(named.R)<<16 | int(named.G)<<8 | int(named.B), nil
	}

	hex := strings.TrimPrefix(text, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8:
		hex = hex[2:]
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, text)
	}

	packed, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, text)
	}

	return int(packed), nil
}

// FormatColor renders a packed color the way GTFS expects it, six upper case hex digits without a leading #
func FormatColor(color int) string {
	return fmt.Sprintf("%06X", color&0xFFFFFF)
}
