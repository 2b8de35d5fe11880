// Command parsby is a small diagnostic CLI for exercising the parsby
// combinator library's bundled grammars against a file or stdin.
package main

import "github.com/oleiade/parsby/internal/cli"

func main() {
	cli.Main()
}
