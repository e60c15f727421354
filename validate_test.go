package guidefmt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidateInputAcceptsText(t *testing.T) {
	for _, src := range []string{
		"",
		"@node main\nplain body text\n",
		"tabs\tand\r\nCRLF are fine\n",
		"unicode: åäö © @{b}fet@{ub}\n",
	} {
		if err := ValidateInput([]byte(src)); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
	}
}

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	err := ValidateInput([]byte{'@', 'n', 0xff, 0xfe})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err = %v, want ErrInvalidUTF8", err)
	}
}

func TestValidateInputRejectsNUL(t *testing.T) {
	err := ValidateInput([]byte("@node main\x00rest"))
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("err = %v, want ErrBinaryInput", err)
	}
}

func TestValidateInputRejectsControlDense(t *testing.T) {
	src := append(bytes.Repeat([]byte{0x1b}, 8), []byte(strings.Repeat("a", 120))...)
	err := ValidateInput(src)
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("err = %v, want ErrBinaryInput", err)
	}
}

func TestFormatValidatesBeforeParsing(t *testing.T) {
	var out bytes.Buffer
	err := Format(FormatRequest{
		Reader: strings.NewReader("@node a\nbody\x00"),
		Writer: &out,
	})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("err = %v, want ErrBinaryInput", err)
	}
	if out.Len() != 0 {
		t.Fatalf("output written despite error: %q", out.String())
	}
}
