package main

import "github.com/dt-pm-tools/prd-export/cmd"

func main() {
	cmd.Execute()
}
