// Command qmc is a CLI driver around package qmc: it exposes minterm/
// maxterm-based minimization and a small truth-table helper over cobra
// subcommands.
package main

func main() {
	Execute()
}
