package printer

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// fontSizeByte packs width/height magnification factors (1..8) into the
// argument byte of GS !.
func fontSizeByte(width, height int) byte {
	if width < 1 {
		width = 1
	}
	if width > 8 {
		width = 8
	}
	if height < 1 {
		height = 1
	}
	if height > 8 {
		height = 8
	}
	return byte((width-1)<<4 | (height - 1))
}

// cmdInit is ESC @ (initialize printer).
func cmdInit() []byte {
	return []byte{ESC, '@'}
}

// cmdAlign is ESC a n.
func cmdAlign(align int) []byte {
	if align < AlignLeft || align > AlignRight {
		align = AlignLeft
	}
	return []byte{ESC, 'a', byte(align)}
}

// cmdFontSize is GS ! n.
func cmdFontSize(width, height int) []byte {
	return []byte{GS, '!', fontSizeByte(width, height)}
}

// cmdCut is GS V 0 (full cut).
func cmdCut() []byte {
	return []byte{GS, 'V', 0x00}
}
