// Command advent runs Advent of Code solutions against their
// sample and puzzle inputs.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
