package main

import (
	"github.com/threefoldtech/stellar-examples/cmd"
	"github.com/threefoldtech/stellar-examples/exception"
)

func main() {
	defer exception.CrashGuard("STELLARX")

	cmd.Execute()
}
