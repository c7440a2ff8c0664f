// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/ezrec/mipsasm/asm"
	asmio "github.com/ezrec/mipsasm/io"
)

// STDIO is the path naming standard input or standard output.
const STDIO = "-"

// Compiler reads a source, assembles it, and publishes the result to a sink.
type Compiler struct {
	Verbose   bool           // If set, enables verbose logging.
	Assembler *asm.Assembler // Assembler used for each compile.
	Program   *asm.Program   // Most recently compiled program.
}

// NewCompiler creates a new compiler.
func NewCompiler() (comp *Compiler) {
	comp = &Compiler{
		Assembler: &asm.Assembler{},
	}

	return
}

// Compile assembles input and writes the output to sink. The sink is
// committed on success and aborted on any failure. Name identifies the
// input in errors.
func (comp *Compiler) Compile(name string, input io.Reader, sink asmio.Sink) (err error) {
	defer func() {
		if err == nil {
			return
		}
		abortErr := sink.Abort()
		if abortErr != nil && comp.Verbose {
			log.Printf("%v: abort: %v", name, abortErr)
		}
		err = &ErrCompile{Path: name, Err: err}
	}()

	data, err := io.ReadAll(input)
	if err != nil {
		err = &asmio.ErrIO{Op: "read", Path: name, Err: err}
		return
	}

	comp.Assembler.Verbose = comp.Verbose
	comp.Program, err = comp.Assembler.Parse(bytes.NewReader(data))
	if err != nil {
		return
	}

	if comp.Verbose {
		log.Printf("%v: %v instructions, %v ignored tokens", name,
			len(comp.Program.Binary()), len(comp.Program.Ignored()))
	}

	_, err = comp.Program.WriteTo(sink)
	if err != nil {
		return
	}

	err = sink.Commit()
	return
}

// Open returns the input named by path, and a function to release it.
func Open(path string) (input io.Reader, release func(), err error) {
	if path == STDIO {
		input = os.Stdin
		release = func() {}
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		err = &asmio.ErrIO{Op: "open", Path: path, Err: err}
		return
	}

	input = inf
	release = func() { inf.Close() }
	return
}

// Create returns the sink named by path.
func Create(path string) (sink asmio.Sink, err error) {
	if path == STDIO {
		sink = &asmio.Stream{Output: os.Stdout}
		return
	}

	file, err := asmio.CreateFile(path)
	if err != nil {
		return
	}

	sink = file
	return
}
