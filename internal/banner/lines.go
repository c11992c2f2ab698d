package banner

import "bytes"

// styleLines is a byte-exact view of a stylesheet split into lines. Each line
// keeps its own terminator so untouched lines serialize back unchanged.
type styleLines struct {
	text []string
	eol  []string
}

// splitLines breaks data on "\n", "\r\n" or a bare "\r". A final
// unterminated segment only counts as a line when it is non-empty, so
// "a\nb\n" has two lines.
func splitLines(data []byte) styleLines {
	var sl styleLines
	for len(data) > 0 {
		i := bytes.IndexAny(data, "\r\n")
		if i < 0 {
			sl.text = append(sl.text, string(data))
			sl.eol = append(sl.eol, "")
			break
		}
		eol := data[i : i+1]
		if data[i] == '\r' && i+1 < len(data) && data[i+1] == '\n' {
			eol = data[i : i+2]
		}
		sl.text = append(sl.text, string(data[:i]))
		sl.eol = append(sl.eol, string(eol))
		data = data[i+len(eol):]
	}
	return sl
}

func (sl styleLines) Len() int { return len(sl.text) }

func (sl styleLines) Bytes() []byte {
	var buf bytes.Buffer
	for i, line := range sl.text {
		buf.WriteString(line)
		buf.WriteString(sl.eol[i])
	}
	return buf.Bytes()
}
