package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	AddServerFlags(fs)
	require.NoError(t, fs.Parse(nil))

	var cfg Server
	require.NoError(t, Load(fs, &cfg))
	assert.Equal(t, "[::1]:8001", cfg.ListenAddr)
	assert.False(t, cfg.ErrorDetails)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "client.yaml")
	require.NoError(t, os.WriteFile(file, []byte("messages: 7\ncodec: json\ndelay: 250ms\n"), 0o600))
	t.Setenv("GRPCECHO_LOG_LEVEL", "debug")
	t.Setenv("GRPCECHO_CODEC", "proto")

	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	AddClientFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", file, "--target", "example:9000"}))

	var cfg Client
	require.NoError(t, Load(fs, &cfg))
	assert.Equal(t, "example:9000", cfg.Target)
	assert.Equal(t, "debug", cfg.Level)
	// the environment wins over the config file
	assert.Equal(t, "proto", cfg.Codec)
	assert.Equal(t, 7, cfg.Messages)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
}

func TestLoadMissingConfigFile(t *testing.T) {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	AddClientFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}))

	var cfg Client
	assert.Error(t, Load(fs, &cfg))
}
