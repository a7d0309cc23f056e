// Command recurse runs the recursive algorithm demonstrations.
//
//	recurse menu                 # every family, in order
//	recurse menu divide tail     # selected families
//	recurse factorial 10
//	recurse search --check 23 2 5 8 12 16 23 38
//	recurse -v fib 25            # trace library calls on stderr
//
// Settings are read from ./recurse.toml unless --config points elsewhere.
package main

import (
	"os"

	"github.com/katalvlaran/recurse/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
