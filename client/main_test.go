package client

import (
	"io"
	"os"
	"testing"

	"github.com/threefoldtech/stellar-examples/logx"
)

func TestMain(m *testing.M) {
	logx.SetOutput(io.Discard)
	os.Exit(m.Run())
}
