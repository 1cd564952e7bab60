// cmd/tachos/main.go
package main

import (
	cmd "github.com/mwiater/tachos/internal/cli"
)

var executeCmd = cmd.Execute

// main starts the tachos CLI application by delegating to the
// cobra root command defined in the cli package. It does not
// take any arguments and does not return a value.
func main() {
	executeCmd()
}
