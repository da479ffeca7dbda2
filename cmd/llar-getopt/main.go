package main

import "github.com/goplus/llar-getopt/cmd/llar-getopt/internal"

func main() {
	internal.Execute()
}
