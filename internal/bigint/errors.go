package bigint

import "fmt"

// ParseError is returned by FromString when the input contains a byte that
// is not an ASCII decimal digit. The parse is aborted immediately; no
// partially built value is ever returned alongside a ParseError.
type ParseError struct {
	// Offset is the byte position of the offending character.
	Offset int
	// Byte is the offending byte itself.
	Byte byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bigint: invalid decimal digit %q at offset %d", e.Byte, e.Offset)
}
