package pixel

// Packed is an RGB565 color word: red in the top 5 bits, green in the
// middle 6, blue in the bottom 5. This is the wire format the display
// driver consumes, so the layout is fixed.
//
// Pack truncates 8-bit channels to their top bits. Truncation, not
// rounding: Pack(255,255,255) == 0xFFFF but Pack(7,3,7) == 0.
func Pack(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3
}

// R expands the red channel back to 8 bits. The low bits stay zero, so
// Pack(R(c), G(c), B(c)) == c for any packed c.
func R(c uint16) uint8 {
	return uint8(c>>8) & 0xF8
}

// G expands the green channel back to 8 bits.
func G(c uint16) uint8 {
	return uint8(c>>3) & 0xFC
}

// B expands the blue channel back to 8 bits.
func B(c uint16) uint8 {
	return uint8(c<<3) & 0xF8
}

// Packed color constants matching the firmware system palette.
const (
	Black   uint16 = 0x0000
	White   uint16 = 0xFFFF
	Red     uint16 = 0xF800
	Green   uint16 = 0x07E0
	Blue    uint16 = 0x001F
	Yellow  uint16 = 0xFFE0
	Cyan    uint16 = 0x07FF
	Magenta uint16 = 0xF81F
)
