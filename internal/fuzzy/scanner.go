package fuzzy

// mask of the value bits of a continuation byte
const contMask = 0b0011_1111

// bottom bits of a leading byte: 5 for width 2, 4 for width 3, 3 for width 4
func utf8FirstByte(b byte, width uint) rune {
	return rune(b & (0x7F >> width))
}

func utf8AccContByte(ch rune, b byte) rune {
	return (ch << 6) | rune(b&contMask)
}

func byteAt(b []byte, i int) byte {
	if i < len(b) {
		return b[i]
	}
	return 0
}

// nextCodePoint decodes the leading scalar value from b and reports the
// width the cursor should advance, taken from the leading byte's UTF-8
// prefix. Missing or invalid continuation bytes contribute their masked
// low bits (absent bytes read as zero), so malformed input produces a
// deterministic scalar instead of an error and offsets stay aligned
// with the candidate bytes. ok is false only when b is empty.
func nextCodePoint(b []byte) (r rune, width int, ok bool) {
	if len(b) == 0 {
		return 0, 0, false
	}

	x := b[0]
	if x < 0x80 {
		return rune(x), 1, true
	}

	first := utf8FirstByte(x, 2)
	y := byteAt(b, 1)
	ch := utf8AccContByte(first, y)
	width = 2
	if x >= 0xE0 {
		z := byteAt(b, 2)
		yz := utf8AccContByte(rune(y&contMask), z)
		ch = first<<12 | yz
		width = 3
		if x >= 0xF0 {
			w := byteAt(b, 3)
			ch = (first&0x07)<<18 | utf8AccContByte(yz, w)
			width = 4
		}
	}

	return ch, width, true
}
