package debug

// bytesPerRow is the maximum number of bytes rendered per dump row.
const bytesPerRow = 8

// rowSeparator joins a row onto the line of the row before it.
const rowSeparator = " : "

const hexDigits = "0123456789ABCDEF"

// appendHexRows appends data to b as rows of up to bytesPerRow uppercase hex
// pairs. Rows alternate between starting a fresh continuation line and being
// appended to the current line after rowSeparator, beginning with a fresh
// line. No trailing newline is written.
func appendHexRows(b, data []byte) []byte {
	newLine := true
	for start := 0; start < len(data); start += bytesPerRow {
		end := min(start+bytesPerRow, len(data))
		if newLine {
			b = append(b, '\n')
			b = append(b, continuationPrefix...)
		} else {
			b = append(b, rowSeparator...)
		}
		for i, c := range data[start:end] {
			if i > 0 {
				b = append(b, ' ')
			}
			b = append(b, hexDigits[c>>4], hexDigits[c&0x0f])
		}
		newLine = !newLine
	}
	return b
}
