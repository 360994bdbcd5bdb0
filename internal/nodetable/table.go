package nodetable

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jcorbin/inets/internal/flushio"
)

// WordsPerNode is the number of table words that make up one node.
const WordsPerNode = 4

// Location names a line in a table file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// SyntaxError reports an unparsable token within a table file.
type SyntaxError struct {
	Location
	Token string
	Err   error
}

func (err SyntaxError) Error() string {
	return fmt.Sprintf("%v: invalid word %q: %v", err.Location, err.Token, err.Err)
}

func (err SyntaxError) Unwrap() error { return err.Err }

// Read parses a flat node table: unsigned words separated by commas or
// whitespace, decimal or with a 0x, 0o or 0b prefix. Anything following "//"
// or "#" on a line is a comment. The word count must be a multiple of
// WordsPerNode.
func Read(name string, r io.Reader) ([]uint64, error) {
	var (
		words []uint64
		loc   = Location{Name: name}
		sc    = bufio.NewScanner(r)
	)
	for sc.Scan() {
		loc.Line++
		line := sc.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, token := range strings.FieldsFunc(line, isSeparator) {
			word, err := strconv.ParseUint(token, 0, 64)
			if err != nil {
				if ne, ok := err.(*strconv.NumError); ok {
					err = ne.Err
				}
				return nil, SyntaxError{loc, token, err}
			}
			words = append(words, word)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %v", name)
	}
	if n := len(words); n%WordsPerNode != 0 {
		return nil, errors.Errorf("%v: %v words do not make whole nodes of %v", loc, n, WordsPerNode)
	}
	return words, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ',', ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// Write formats words as a table readable by Read: one node per line,
// labeled with its address.
func Write(w io.Writer, words []uint64) error {
	out := flushio.NewWriteFlusher(w)
	var buf []byte
	for i := 0; i < len(words); i += WordsPerNode {
		buf = buf[:0]
		end := i + WordsPerNode
		if end > len(words) {
			end = len(words)
		}
		for _, word := range words[i:end] {
			buf = strconv.AppendUint(buf, word, 10)
			buf = append(buf, ", "...)
		}
		buf = append(buf, "// @"...)
		buf = strconv.AppendInt(buf, int64(i/WordsPerNode), 10)
		buf = append(buf, '\n')
		if _, err := out.Write(buf); err != nil {
			return err
		}
	}
	return out.Flush()
}
