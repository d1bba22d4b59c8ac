package model

// Palette is the fixed set of goal colors, assigned round-robin.
var Palette = [...]string{"#4F46E5", "#059669", "#DC2626", "#D97706", "#7C3AED", "#DB2777"}

// PaletteColor returns the color for a goal created when n goals already exist.
func PaletteColor(n int) string {
	if n < 0 {
		n = -n
	}
	return Palette[n%len(Palette)]
}
