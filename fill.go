package inkfill

import "errors"

// ErrGradientStops is returned when a gradient fill carries fewer than
// two color stops. The validation happens at the call boundary, before
// any traversal begins.
var ErrGradientStops = errors.New("inkfill: gradient fill needs at least two color stops")

// Fill represents what to flood a region with.
// This is a sealed interface - only types in this package implement it.
//
// Supported fill types:
//   - SolidFill: a single solid color
//   - GradientFill: a vertical top-to-bottom gradient across the region
//
// Example usage:
//
//	eng.Fill(x, y, inkfill.Solid(inkfill.Red))
//	eng.Fill(x, y, inkfill.Gradient(inkfill.Red, inkfill.Yellow))
type Fill interface {
	// fillMarker is an unexported method that seals this interface.
	// Only types in this package can implement Fill.
	fillMarker()

	// Validate reports whether the fill spec is well formed.
	Validate() error
}

// SolidFill paints a region with a single opaque color.
type SolidFill struct {
	// Color is the fill color. Alpha is ignored; filled pixels are
	// always written fully opaque.
	Color RGBA
}

// fillMarker implements the sealed Fill interface.
func (SolidFill) fillMarker() {}

// Validate implements Fill. A solid fill is always well formed.
func (SolidFill) Validate() error { return nil }

// Solid creates a SolidFill from an RGBA color.
func Solid(c RGBA) SolidFill {
	return SolidFill{Color: c}
}

// SolidHex creates a SolidFill from a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional
// '#' prefix.
func SolidHex(hex string) SolidFill {
	return SolidFill{Color: Hex(hex)}
}

// GradientFill paints a region with a vertical linear gradient. The
// colors are spread evenly from the topmost row of the filled region to
// its bottommost row.
type GradientFill struct {
	// Stops lists the gradient colors in top-to-bottom order.
	// At least two are required.
	Stops []RGBA
}

// fillMarker implements the sealed Fill interface.
func (GradientFill) fillMarker() {}

// Validate implements Fill. A gradient needs at least two color stops.
func (f GradientFill) Validate() error {
	if len(f.Stops) < 2 {
		return ErrGradientStops
	}
	return nil
}

// Gradient creates a GradientFill from top-to-bottom colors.
func Gradient(stops ...RGBA) GradientFill {
	return GradientFill{Stops: stops}
}

// colorStops returns the evenly spaced stop list for interpolation.
func (f GradientFill) colorStops() []ColorStop {
	return evenStops(f.Stops)
}
