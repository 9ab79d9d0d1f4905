package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"helmdeploy"}, args...)
}

func TestRun_HelpSucceeds(t *testing.T) {
	withArgs(t, "help")
	var stderr bytes.Buffer

	status := run(&stderr)

	assert.Equal(t, 0, status)
	assert.Empty(t, stderr.String())
}

func TestRun_UnknownCommandFails(t *testing.T) {
	withArgs(t, "rollback")
	var stderr bytes.Buffer

	status := run(&stderr)

	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), `unknown command "rollback"`)
}

func TestRun_ConfigurationErrorExitsWithOne(t *testing.T) {
	withArgs(t, "plan")
	t.Setenv("HELM_CHART_URL", "")
	t.Setenv("LOG_LEVEL", "error")
	var stderr bytes.Buffer

	status := run(&stderr)

	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), "HELM_CHART_URL")
}
