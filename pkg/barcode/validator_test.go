package barcode

import (
	"strings"
	"testing"
)

func TestIsValidAcceptsSupportedLengths(t *testing.T) {
	t.Parallel()

	for _, n := range []int{6, 7, 8, 12, 13, 14} {
		code := strings.Repeat("7", n)
		if !IsValid(code) {
			t.Fatalf("expected %d-digit code %q to be valid", n, code)
		}
	}
}

func TestIsValidTrimsWhitespace(t *testing.T) {
	t.Parallel()

	if !IsValid("  4006381333931\t") {
		t.Fatal("expected surrounding whitespace to be trimmed before validation")
	}
}

func TestIsValidRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"12345",          // unsupported length
		"123456789",      // unsupported length
		"123456789012345", // too long
		"12345a78",       // non-digit
		"1234 5678",      // inner whitespace
		"12345678.",      // punctuation
		"١٢٣٤٥٦٧٨",       // non-ASCII digits
	}
	for _, c := range cases {
		if IsValid(c) {
			t.Fatalf("expected %q to be rejected", c)
		}
	}
}
