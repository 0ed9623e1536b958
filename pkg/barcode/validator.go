package barcode

import (
	"strings"
)

// validLengths covers UPC-E (6-8), EAN-8, UPC-A (12), EAN-13 and the 14-digit
// GTIN variant.
var validLengths = map[int]bool{6: true, 7: true, 8: true, 12: true, 13: true, 14: true}

// IsValid reports whether s looks like an EAN/UPC family barcode: after
// trimming whitespace every character must be a decimal digit and the digit
// count must be one of {6,7,8,12,13,14}. The input is not normalized for the
// caller; whoever passes the code onward is responsible for trimming it again.
func IsValid(s string) bool {
	code := strings.TrimSpace(s)
	if !validLengths[len(code)] {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
