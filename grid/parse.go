package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse builds a Grid from newline-separated rows of decimal digits.
// Each character c maps to the cost c-'0'. A single trailing newline and
// Windows line endings are accepted; blank lines inside the text are not.
//
// Errors (wrapped with row/column context):
//   - ErrEmptyGrid       if the text holds no rows or the first row is empty.
//   - ErrNonRectangular  if a row length differs from the first row.
//   - ErrNonDigit        if any character is outside '0'..'9'. The column is
//     the byte offset of that character within its row.
//
// Complexity: O(W×H).
func Parse(text string) (*Grid, error) {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	w := len(lines[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	values := make([][]int, len(lines))
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
		row := make([]int, w)
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '9' {
				r, _ := utf8.DecodeRuneInString(line[x:])
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrNonDigit, r, y, x)
			}
			row[x] = int(c - '0')
		}
		values[y] = row
	}

	return New(values)
}

// MustParse is like Parse but panics on error.
// Intended for tests, examples and compile-time constant inputs.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return g
}
