// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/mipsasm/compiler"
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [-v] OUTPUT INPUT\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		atexit.Exit(2)
	}

	output := flag.Arg(0)
	input := flag.Arg(1)

	inf, release, err := compiler.Open(input)
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}
	atexit.Register(release)

	sink, err := compiler.Create(output)
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}
	// Leaves the output untouched if we exit early.
	atexit.Register(func() { sink.Abort() })

	comp := compiler.NewCompiler()
	comp.Verbose = verbose

	err = comp.Compile(input, inf, sink)
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	atexit.Exit(0)
}
