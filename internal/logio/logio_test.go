package logio_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/inets/internal/logio"
)

func Test_Logger(t *testing.T) {
	var out strings.Builder
	log := logio.NewLogger(&out)

	log.Printf("INFO", "hello %v", "world")
	log.Leveledf("TRACE")("> rewrite @%v", 3)
	assert.Equal(t, 0, log.ExitCode(), "expected clean exit code")

	log.Silence("TRACE")
	log.Leveledf("TRACE")("dropped")
	log.ErrorIf(nil)
	log.ErrorIf(fmt.Errorf("bad net"))
	assert.Equal(t, 1, log.ExitCode(), "expected error exit code")

	assert.Equal(t, strings.Join([]string{
		"INFO: hello world",
		"TRACE: > rewrite @3",
		"ERROR: bad net",
		"",
	}, "\n"), out.String())
}

func Test_Writer(t *testing.T) {
	var lines []string
	lw := &logio.Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}

	fmt.Fprintf(lw, "one\ntw")
	assert.Equal(t, []string{"one"}, lines, "expected only complete lines")
	fmt.Fprintf(lw, "o\nthree")
	assert.Equal(t, []string{"one", "two"}, lines)
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"one", "two", "three"}, lines, "expected close to flush")
}
