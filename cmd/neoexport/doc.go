// Package neoexport provides the command-line interface for the neoexport
// tool. It configures subcommands (convert, show, history, config), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/neoexport/neoexport/cmd/neoexport"
//	func main() { neoexport.Execute() }
package neoexport
