package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profile: u64
strategy: FIFO
mem_limit: 4096
page_size: 64
lenient: true
timeout: 2s
`), 0o644), "must write config")

	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(path, &cfg), "must load config")
	assert.Equal(t, Config{
		Profile:  "u64",
		Strategy: "FIFO",
		MemLimit: 4096,
		PageSize: 64,
		Lenient:  true,
		Timeout:  2 * time.Second,
	}, cfg)

	opt, err := cfg.Options(nil)
	require.NoError(t, err, "must build options")
	assert.NotNil(t, opt)

	assert.Error(t, LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), &cfg), "expected missing file error")
}

func Test_Config_Options(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  Config
		err  string
	}{
		{name: "default", cfg: DefaultConfig()},
		{name: "bad profile", cfg: Config{Profile: "u8", Strategy: "LIFO"}, err: `unknown profile "u8", expected one of u32, u64`},
		{name: "bad strategy", cfg: Config{Profile: "u32", Strategy: "DFS"}, err: `unknown strategy "DFS", expected LIFO or FIFO`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.Options(nil)
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
