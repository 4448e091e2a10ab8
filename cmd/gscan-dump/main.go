// Command gscan-dump prints every declaration of every Go file under a
// directory together with its enclosing declaration path.
package main

import (
	"github.com/fatih/color"

	"github.com/gnoswap-labs/gscan/cmd"
	"github.com/gnoswap-labs/gscan/internal/lints"
)

func main() {
	cmd.Execute("gscan-dump", lints.NewDumpRule(color.Output))
}
