package main

import "github.com/neoexport/neoexport/cmd/neoexport"

func main() { neoexport.Execute() }
