// Package button defines the controller buttons the input layer understands.
//
// Buttons are bit flags so a whole controller state fits in one Button value:
// the platform reports the set of held buttons, and single buttons are used as
// action keys.
package button

import "strings"

// Button is a single controller button or a set of them.
type Button uint64

const (
	A Button = 1 << iota
	B
	X
	Y
	LStick
	RStick
	L
	R
	ZL
	ZR
	Plus
	Minus
	DLeft
	DUp
	DRight
	DDown
)

// Count is the number of distinct buttons.
const Count = 16

// None is the empty button set.
const None Button = 0

var names = [Count]string{
	"A", "B", "X", "Y", "LSTICK", "RSTICK", "L", "R",
	"ZL", "ZR", "PLUS", "MINUS", "LEFT", "UP", "RIGHT", "DOWN",
}

// Has reports whether every button in other is set in b.
func (b Button) Has(other Button) bool {
	return other != 0 && b&other == other
}

// Each calls fn for every single button set in b, lowest bit first.
func (b Button) Each(fn func(Button)) {
	for i := range Count {
		single := Button(1) << i
		if b&single != 0 {
			fn(single)
		}
	}
}

// String returns the button name, or names joined by "+" for a set.
func (b Button) String() string {
	if b == None {
		return "NONE"
	}
	var parts []string
	for i := range Count {
		if b&(Button(1)<<i) != 0 {
			parts = append(parts, names[i])
		}
	}
	return strings.Join(parts, "+")
}

// Parse returns the single button with the given name (case-insensitive).
func Parse(name string) (Button, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return Button(1) << i, true
		}
	}
	return None, false
}

// IsDirectional reports whether b is one of the D-pad buttons.
func (b Button) IsDirectional() bool {
	switch b {
	case DUp, DDown, DLeft, DRight:
		return true
	}
	return false
}
