// Command opensslcond prints the OpenSSL conditional binding table and
// probes installed OpenSSL libraries against it.
package main

import (
	"fmt"
	"os"

	"github.com/golang-fips/openssl-conditional/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "opensslcond:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
