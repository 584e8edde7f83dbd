// Package main is the entry point for the ordersctl developer CLI.
package main

import (
	"os"

	"orders-demo/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
