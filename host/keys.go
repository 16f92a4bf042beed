package host

import (
	"strconv"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var namedKeys = map[glfw.Key]string{
	glfw.KeySpace:     "Space",
	glfw.KeyEscape:    "Escape",
	glfw.KeyEnter:     "Enter",
	glfw.KeyTab:       "Tab",
	glfw.KeyBackspace: "Backspace",
	glfw.KeyDelete:    "Delete",
	glfw.KeyUp:        "ArrowUp",
	glfw.KeyDown:      "ArrowDown",
	glfw.KeyLeft:      "ArrowLeft",
	glfw.KeyRight:     "ArrowRight",
	glfw.KeyHome:      "Home",
	glfw.KeyEnd:       "End",
}

// KeyName maps a glfw key to the name pages match on: "Space", "Escape",
// arrow names, "a"-"z", "0"-"9" and "F1"-"F12". Other keys map to "".
func KeyName(k glfw.Key) string {
	if name, ok := namedKeys[k]; ok {
		return name
	}
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return string(rune('a' + int(k-glfw.KeyA)))
	case k >= glfw.Key0 && k <= glfw.Key9:
		return string(rune('0' + int(k-glfw.Key0)))
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return "F" + strconv.Itoa(int(k-glfw.KeyF1)+1)
	}
	return ""
}
