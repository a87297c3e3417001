package svg

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// parseNumber converts a single lexer item into a float64.
func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("%w: got %q", ErrMalformedNumber, i.Value)
	}

	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, i.Value)
	}

	return n, nil
}

// parseTuple reads an x,y coordinate pair, tolerating comma and space
// separators between the two numbers.
func parseTuple(l *gl.Lexer) (Tuple, error) {
	t := Tuple{}

	l.ConsumeWhiteSpace()
	x, err := parseNumber(l.NextItem())
	if err != nil {
		return t, err
	}
	t[0] = x

	l.ConsumeWhiteSpace()
	l.ConsumeComma()
	l.ConsumeWhiteSpace()

	if l.PeekItem().Type != gl.ItemNumber {
		return t, fmt.Errorf("%w: coordinate pair cut short after %v", ErrArityMismatch, x)
	}
	y, err := parseNumber(l.NextItem())
	if err != nil {
		return t, err
	}
	t[1] = y

	return t, nil
}

// parseTuples consumes coordinate pairs until the next item cannot start a
// number.
func parseTuples(l *gl.Lexer) ([]Tuple, error) {
	var tuples []Tuple

	l.ConsumeWhiteSpace()
	for l.PeekItem().Type == gl.ItemNumber {
		t, err := parseTuple(l)
		if err != nil {
			return nil, err
		}
		tuples = append(tuples, t)

		l.ConsumeWhiteSpace()
		l.ConsumeComma()
		l.ConsumeWhiteSpace()
	}

	return tuples, nil
}

// parseNumbers consumes scalar arguments until the next item cannot start
// a number.
func parseNumbers(l *gl.Lexer) ([]float64, error) {
	var numbers []float64

	l.ConsumeWhiteSpace()
	for l.PeekItem().Type == gl.ItemNumber {
		n, err := parseNumber(l.NextItem())
		if err != nil {
			return numbers, err
		}
		numbers = append(numbers, n)

		l.ConsumeWhiteSpace()
		l.ConsumeComma()
		l.ConsumeWhiteSpace()
	}

	return numbers, nil
}

// ScanNumbers extracts the ordered numeric tokens found in s, skipping
// runs of comma and space characters between them and stopping at the
// first character that cannot start a number. An empty or unparseable
// string yields no numbers.
func ScanNumbers(s string) []float64 {
	l, _ := gl.Lex("numbers", s)

	numbers, _ := parseNumbers(l)
	return numbers
}
