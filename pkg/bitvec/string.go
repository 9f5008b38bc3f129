package bitvec

import "fmt"

// ParseError reports an invalid character in an input handed to Parse.
type ParseError struct {
	Input string
	Pos   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bitvec: invalid character %q at position %d in %q", e.Input[e.Pos], e.Pos, e.Input)
}

// Parse converts a base-2 string into a vector whose width is the string's
// length, most significant bit first: "1011" parses to the value eleven at
// width 4. Only base 2 is supported; any other base panics. A character
// other than '0' or '1' returns a *ParseError. The empty string parses to a
// width-0 vector.
func Parse(s string, base int) (*BitVector, error) {
	if base != 2 {
		panic(fmt.Sprintf("bitvec.Parse: unsupported base %d", base))
	}
	v := New(uint64(len(s)))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			v.Set(uint64(len(s)-1-i), true)
		case '0':
		default:
			return nil, &ParseError{Input: s, Pos: i}
		}
	}
	return v, nil
}

// Text renders the vector in the given base, most significant bit first, so
// Parse(v.Text(2), 2) reproduces v. Only base 2 is supported; any other
// base panics. A width-0 vector renders as the empty string.
func (v *BitVector) Text(base int) string {
	if base != 2 {
		panic(fmt.Sprintf("BitVector.Text: unsupported base %d", base))
	}
	buf := make([]byte, v.width)
	for i := uint64(0); i < v.width; i++ {
		if v.Get(i) {
			buf[v.width-1-i] = '1'
		} else {
			buf[v.width-1-i] = '0'
		}
	}
	return string(buf)
}

// String implements fmt.Stringer as Text(2).
func (v *BitVector) String() string {
	return v.Text(2)
}
