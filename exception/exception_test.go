package exception

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/threefoldtech/stellar-examples/errors"
	"github.com/threefoldtech/stellar-examples/logx"
)

func TestMain(m *testing.M) {
	logx.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestSafeRunPassesErrorsThrough(t *testing.T) {
	want := errors.NewError(errors.ErrCodeInvalidKey, errors.ErrMsgInvalidKey)
	assert.Same(t, want, SafeRun("test", func() error { return want }))
	assert.NoError(t, SafeRun("test", func() error { return nil }))
}

func TestSafeRunRecoversPanic(t *testing.T) {
	err := SafeRun("test", func() error {
		var m map[string]int
		m["boom"] = 1
		return nil
	})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInternal))
	assert.Contains(t, err.Error(), "test crashed")
}
