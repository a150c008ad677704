package inkfill

// OutlineStyle controls how the line art is tinted on top of the canvas.
// It is derived state: changing it recomputes line pixels on demand and
// records no history entries of its own.
type OutlineStyle struct {
	// Visible toggles the line art. When false, halo pixels are blended
	// toward white so the outlines disappear.
	Visible bool

	// Tint is the outline color. Alpha is ignored.
	Tint RGBA

	// Opacity is the outline strength in percent, 0 to 100.
	Opacity int
}

// DefaultOutlineStyle returns the style matching the untinted original:
// visible black outlines at full opacity.
func DefaultOutlineStyle() OutlineStyle {
	return OutlineStyle{Visible: true, Tint: Black, Opacity: 100}
}

// applyOutline recomputes every canvas pixel classified as line halo
// under the reference. Pixels outside the halo are left untouched, so
// prior fills are never disturbed. The pass is idempotent: a later
// invocation supersedes the visual result of an earlier one.
//
// Per qualifying pixel, with ratio = brightness/255 on the reference:
//
//	visible: target = white*ratio + tint*(1-ratio)
//	hidden:  target = white
//	final   = target*opacity + white*(1-opacity)
//
// Alpha stays fully opaque throughout.
func applyOutline(ref *Reference, canvas *Pixmap, style OutlineStyle) {
	op := clamp01(float64(style.Opacity) / 100)
	tr := clamp255(style.Tint.R * 255)
	tg := clamp255(style.Tint.G * 255)
	tb := clamp255(style.Tint.B * 255)

	data := canvas.data
	n := ref.width * ref.height
	for idx := 0; idx < n; idx++ {
		b := ref.brightnessAtIndex(idx)
		if b >= lineHaloThreshold {
			continue
		}

		var fr, fg, fb float64
		if style.Visible {
			ratio := float64(b) / 255
			fr = 255*ratio + tr*(1-ratio)
			fg = 255*ratio + tg*(1-ratio)
			fb = 255*ratio + tb*(1-ratio)
		} else {
			fr, fg, fb = 255, 255, 255
		}

		i := idx * 4
		data[i+0] = uint8(clamp255(fr*op + 255*(1-op)))
		data[i+1] = uint8(clamp255(fg*op + 255*(1-op)))
		data[i+2] = uint8(clamp255(fb*op + 255*(1-op)))
		data[i+3] = 255
	}
}
