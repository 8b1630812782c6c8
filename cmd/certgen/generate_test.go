package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveJob_ConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("generate.sheet", "Attendees")
	viper.Set("generate.column", "Filename")
	viper.Set("generate.output", "out/certs.zip")
	viper.Set("generate.show_progress", true)

	job, cfg, err := resolveJob(generateCmd)
	require.NoError(t, err)
	assert.Equal(t, "Attendees", job.Sheet)
	assert.Equal(t, "Filename", job.Column)
	assert.Equal(t, "out/certs.zip", job.Output)
	assert.True(t, cfg.ShowProgress)
}

func TestResolveJob_FallbackOutput(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	job, cfg, err := resolveJob(generateCmd)
	require.NoError(t, err)
	assert.Equal(t, "certificates.zip", job.Output)
	assert.False(t, cfg.ShowProgress)
}
