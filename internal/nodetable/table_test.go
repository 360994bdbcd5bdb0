package nodetable_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/inets/internal/nodetable"
)

func Test_Read(t *testing.T) {
	for _, tc := range []struct {
		name  string
		in    string
		words []uint64
		err   string
	}{
		{
			name:  "empty",
			in:    "",
			words: nil,
		},
		{
			name: "one node per line",
			in: "2, 6, 0, 0, // root\n" +
				"3, 5, 1, 939524096,\n",
			words: []uint64{2, 6, 0, 0, 3, 5, 1, 939524096},
		},
		{
			name:  "whitespace and comments",
			in:    "# add\n  2 6\t0 0\n\n3 5 1 0x38000000 // op\n",
			words: []uint64{2, 6, 0, 0, 3, 5, 1, 0x38000000},
		},
		{
			name:  "all on one line",
			in:    "1,2,3,4,5,6,7,8",
			words: []uint64{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			name: "bad word",
			in:   "1, 2,\n3, x4\n",
			err:  `test.net:2: invalid word "x4": invalid syntax`,
		},
		{
			name: "negative word",
			in:   "1 2 -3 4",
			err:  `test.net:1: invalid word "-3": invalid syntax`,
		},
		{
			name: "partial node",
			in:   "1 2 3 4\n5 6\n",
			err:  `test.net:2: 6 words do not make whole nodes of 4`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			words, err := nodetable.Read("test.net", strings.NewReader(tc.in))
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err, "must read")
			assert.Equal(t, tc.words, words)
		})
	}
}

func Test_Read_syntaxError(t *testing.T) {
	_, err := nodetable.Read("big.net", strings.NewReader("99999999999999999999999"))
	var se nodetable.SyntaxError
	require.True(t, errors.As(err, &se), "expected a syntax error, got %v", err)
	assert.Equal(t, nodetable.Location{Name: "big.net", Line: 1}, se.Location)
	assert.EqualError(t, se.Err, "value out of range")
}

func Test_Write(t *testing.T) {
	words := []uint64{2, 6, 0, 0, 3, 5, 1, 939524096}
	var out strings.Builder
	require.NoError(t, nodetable.Write(&out, words), "must write")
	assert.Equal(t,
		"2, 6, 0, 0, // @0\n"+
			"3, 5, 1, 939524096, // @1\n",
		out.String())

	back, err := nodetable.Read("out", strings.NewReader(out.String()))
	require.NoError(t, err, "must read back")
	assert.Equal(t, words, back)
}
