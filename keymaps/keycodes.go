package keymaps

import (
	"strconv"
	"strings"

	evdev "github.com/gvalkov/golang-evdev"
)

// KeyChar is the text a physical key produces with and without shift on a
// US layout.
type KeyChar struct {
	Normal  string
	Shifted string
}

var keyChars = map[uint16]KeyChar{
	evdev.KEY_A: {"a", "A"}, evdev.KEY_B: {"b", "B"},
	evdev.KEY_C: {"c", "C"}, evdev.KEY_D: {"d", "D"},
	evdev.KEY_E: {"e", "E"}, evdev.KEY_F: {"f", "F"},
	evdev.KEY_G: {"g", "G"}, evdev.KEY_H: {"h", "H"},
	evdev.KEY_I: {"i", "I"}, evdev.KEY_J: {"j", "J"},
	evdev.KEY_K: {"k", "K"}, evdev.KEY_L: {"l", "L"},
	evdev.KEY_M: {"m", "M"}, evdev.KEY_N: {"n", "N"},
	evdev.KEY_O: {"o", "O"}, evdev.KEY_P: {"p", "P"},
	evdev.KEY_Q: {"q", "Q"}, evdev.KEY_R: {"r", "R"},
	evdev.KEY_S: {"s", "S"}, evdev.KEY_T: {"t", "T"},
	evdev.KEY_U: {"u", "U"}, evdev.KEY_V: {"v", "V"},
	evdev.KEY_W: {"w", "W"}, evdev.KEY_X: {"x", "X"},
	evdev.KEY_Y: {"y", "Y"}, evdev.KEY_Z: {"z", "Z"},

	evdev.KEY_1: {"1", "!"}, evdev.KEY_2: {"2", "@"},
	evdev.KEY_3: {"3", "#"}, evdev.KEY_4: {"4", "$"},
	evdev.KEY_5: {"5", "%"}, evdev.KEY_6: {"6", "^"},
	evdev.KEY_7: {"7", "&"}, evdev.KEY_8: {"8", "*"},
	evdev.KEY_9: {"9", "("}, evdev.KEY_0: {"0", ")"},

	evdev.KEY_MINUS:      {"-", "_"},
	evdev.KEY_EQUAL:      {"=", "+"},
	evdev.KEY_LEFTBRACE:  {"[", "{"},
	evdev.KEY_RIGHTBRACE: {"]", "}"},
	evdev.KEY_SEMICOLON:  {";", ":"},
	evdev.KEY_APOSTROPHE: {"'", "\""},
	evdev.KEY_GRAVE:      {"`", "~"},
	evdev.KEY_BACKSLASH:  {"\\", "|"},
	evdev.KEY_COMMA:      {",", "<"},
	evdev.KEY_DOT:        {".", ">"},
	evdev.KEY_SLASH:      {"/", "?"},
	evdev.KEY_SPACE:      {" ", " "},

	// Control characters; not printable, so never chord members.
	evdev.KEY_TAB:       {"\t", "\t"},
	evdev.KEY_ENTER:     {"\r", "\r"},
	evdev.KEY_BACKSPACE: {"\b", "\b"},
	evdev.KEY_ESC:       {"\x1b", "\x1b"},
}

var keyNames = map[uint16]string{
	evdev.KEY_A: "KEY_A", evdev.KEY_B: "KEY_B", evdev.KEY_C: "KEY_C", evdev.KEY_D: "KEY_D",
	evdev.KEY_E: "KEY_E", evdev.KEY_F: "KEY_F", evdev.KEY_G: "KEY_G", evdev.KEY_H: "KEY_H",
	evdev.KEY_I: "KEY_I", evdev.KEY_J: "KEY_J", evdev.KEY_K: "KEY_K", evdev.KEY_L: "KEY_L",
	evdev.KEY_M: "KEY_M", evdev.KEY_N: "KEY_N", evdev.KEY_O: "KEY_O", evdev.KEY_P: "KEY_P",
	evdev.KEY_Q: "KEY_Q", evdev.KEY_R: "KEY_R", evdev.KEY_S: "KEY_S", evdev.KEY_T: "KEY_T",
	evdev.KEY_U: "KEY_U", evdev.KEY_V: "KEY_V", evdev.KEY_W: "KEY_W", evdev.KEY_X: "KEY_X",
	evdev.KEY_Y: "KEY_Y", evdev.KEY_Z: "KEY_Z",

	evdev.KEY_1: "KEY_1", evdev.KEY_2: "KEY_2", evdev.KEY_3: "KEY_3", evdev.KEY_4: "KEY_4",
	evdev.KEY_5: "KEY_5", evdev.KEY_6: "KEY_6", evdev.KEY_7: "KEY_7", evdev.KEY_8: "KEY_8",
	evdev.KEY_9: "KEY_9", evdev.KEY_0: "KEY_0",

	evdev.KEY_MINUS:      "KEY_MINUS",
	evdev.KEY_EQUAL:      "KEY_EQUAL",
	evdev.KEY_LEFTBRACE:  "KEY_LEFTBRACE",
	evdev.KEY_RIGHTBRACE: "KEY_RIGHTBRACE",
	evdev.KEY_SEMICOLON:  "KEY_SEMICOLON",
	evdev.KEY_APOSTROPHE: "KEY_APOSTROPHE",
	evdev.KEY_GRAVE:      "KEY_GRAVE",
	evdev.KEY_BACKSLASH:  "KEY_BACKSLASH",
	evdev.KEY_COMMA:      "KEY_COMMA",
	evdev.KEY_DOT:        "KEY_DOT",
	evdev.KEY_SLASH:      "KEY_SLASH",
	evdev.KEY_SPACE:      "KEY_SPACE",
	evdev.KEY_TAB:        "KEY_TAB",
	evdev.KEY_ENTER:      "KEY_ENTER",
	evdev.KEY_BACKSPACE:  "KEY_BACKSPACE",
	evdev.KEY_ESC:        "KEY_ESC",

	evdev.KEY_UP:    "KEY_UP",
	evdev.KEY_DOWN:  "KEY_DOWN",
	evdev.KEY_LEFT:  "KEY_LEFT",
	evdev.KEY_RIGHT: "KEY_RIGHT",

	evdev.KEY_LEFTSHIFT:  "KEY_LEFTSHIFT",
	evdev.KEY_RIGHTSHIFT: "KEY_RIGHTSHIFT",
	evdev.KEY_LEFTCTRL:   "KEY_LEFTCTRL",
	evdev.KEY_RIGHTCTRL:  "KEY_RIGHTCTRL",
	evdev.KEY_LEFTALT:    "KEY_LEFTALT",
	evdev.KEY_RIGHTALT:   "KEY_RIGHTALT",
	evdev.KEY_LEFTMETA:   "KEY_LEFTMETA",
	evdev.KEY_RIGHTMETA:  "KEY_RIGHTMETA",
}

var codesByName = func() map[string]uint16 {
	m := make(map[string]uint16, len(keyNames))
	for code, name := range keyNames {
		m[name] = code
	}
	return m
}()

// modifierKeys maps each modifier key code to the modifier it holds.
var modifierKeys = map[uint16]Modifier{
	evdev.KEY_LEFTSHIFT:  ModShift,
	evdev.KEY_RIGHTSHIFT: ModShift,
	evdev.KEY_LEFTCTRL:   ModCtrl,
	evdev.KEY_RIGHTCTRL:  ModCtrl,
	evdev.KEY_LEFTALT:    ModAlt,
	evdev.KEY_RIGHTALT:   ModAlt,
	evdev.KEY_LEFTMETA:   ModMeta,
	evdev.KEY_RIGHTMETA:  ModMeta,
}

// KeySpace is the code of the space bar, the one key six-key mode never
// treats as a chord member.
const KeySpace uint16 = evdev.KEY_SPACE

// KeyText returns the text code produces, or "" for keys without text.
func KeyText(code uint16, shift bool) string {
	kc, ok := keyChars[code]
	if !ok {
		return ""
	}
	if shift {
		return kc.Shifted
	}
	return kc.Normal
}

// ModifierFor reports which modifier code holds, if any.
func ModifierFor(code uint16) (Modifier, bool) {
	m, ok := modifierKeys[code]
	return m, ok
}

// KeyName returns the evdev name of code, e.g. "KEY_F".
func KeyName(code uint16) string {
	if name, ok := keyNames[code]; ok {
		return name
	}
	return "KEY_" + strconv.Itoa(int(code))
}

// KeyCode resolves a key name. Both "KEY_F" and "f" forms are accepted,
// case-insensitively, as is a single character such as ";".
func KeyCode(name string) (uint16, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "" {
		return 0, false
	}
	if !strings.HasPrefix(upper, "KEY_") {
		if code, ok := codesByName["KEY_"+upper]; ok {
			return code, true
		}
		for code, kc := range keyChars {
			if kc.Normal == name {
				return code, true
			}
		}
		return 0, false
	}
	code, ok := codesByName[upper]
	return code, ok
}
