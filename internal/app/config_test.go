package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	valid := Config{WorkbookPath: "book.hcl", LogFormat: "text", LogLevel: "info", CommentMarker: "#"}

	cfg, err := NewConfig(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, *cfg)

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing path", mutate: func(c *Config) { c.WorkbookPath = "" }},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "trace" }},
		{name: "empty marker", mutate: func(c *Config) { c.CommentMarker = "" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			_, err := NewConfig(c)
			assert.Error(t, err)
		})
	}
}
