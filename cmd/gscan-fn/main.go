// Command gscan-fn reports every function, method and interface method
// declared in the Go files under a directory.
package main

import (
	"github.com/gnoswap-labs/gscan/cmd"
	"github.com/gnoswap-labs/gscan/internal/lints"
)

func main() {
	cmd.Execute("gscan-fn", lints.NewFuncRule())
}
