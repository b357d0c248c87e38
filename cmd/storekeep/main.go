// Command storekeep is the storefront catalog and admin CLI.
package main

import "github.com/dukaforge/storekeep/internal/cli"

func main() {
	cli.Execute()
}
