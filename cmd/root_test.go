package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubCloseLogger(t *testing.T, err error) {
	t.Helper()
	orig := closeLogger
	closeLogger = func() error { return err }
	t.Cleanup(func() { closeLogger = orig })
}

func TestCloseLogReportsFailure(t *testing.T) {
	stubCloseLogger(t, errors.New("disk full"))

	var stderr bytes.Buffer
	closeLog(&stderr)
	assert.Equal(t, "Warning: failed to close log file: disk full\n", stderr.String())
}

func TestCloseLogQuietOnSuccess(t *testing.T) {
	stubCloseLogger(t, nil)

	var stderr bytes.Buffer
	closeLog(&stderr)
	assert.Empty(t, stderr.String())
}
