package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-k", "mongo", "-d", "mongodb://db", "-n", "garden",
			"-s", "secret", "-t", "90", "-l", "debug", "-o", "zerolog",
		}, expectPanic: false,
			expected: &Config{
				HTTPAddr:              "127.0.0.1:9090",
				StorageDriver:         "mongo",
				DatabaseDSN:           "mongodb://db",
				DatabaseName:          "garden",
				SecretKey:             "secret",
				TokenValidityDuration: 90 * time.Minute,
				LogLevel:              "debug",
				LogBackend:            "zerolog",
			}},
		{name: "foreign flags ignored", args: []string{"cmd",
			"-config", "x.json", "-env", ".env.test", "-a", ":1",
		}, expectPanic: false,
			expected: &Config{HTTPAddr: ":1"}},
		{name: "bad minutes", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
