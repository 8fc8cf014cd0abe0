package asciiart

import (
	"image/color"
	"strconv"
	"strings"
)

const ansiReset = "\x1b[0m"

/*
writeTrueColor writes ch wrapped in a 24 bit foreground escape sequence and a reset:

	\x1b[38;2;<r>;<g>;<b>m<ch>\x1b[0m

The reset follows every character, so a line can be cut or reordered without leaking color.
*/
func writeTrueColor(sb *strings.Builder, c color.NRGBA, ch rune) {
	var buf [20]byte

	sb.WriteString("\x1b[38;2;")
	sb.Write(strconv.AppendUint(buf[:0], uint64(c.R), 10))
	sb.WriteByte(';')
	sb.Write(strconv.AppendUint(buf[:0], uint64(c.G), 10))
	sb.WriteByte(';')
	sb.Write(strconv.AppendUint(buf[:0], uint64(c.B), 10))
	sb.WriteByte('m')
	sb.WriteRune(ch)
	sb.WriteString(ansiReset)
}
