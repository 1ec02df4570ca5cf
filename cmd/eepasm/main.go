// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/eepasm/asm"
)

func main() {
	var output string
	var config string
	var verbose bool
	predefine := map[string]string{}

	log.SetFlags(0)
	log.SetPrefix("Error: ")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [-o outfile] [-c configfile] infile\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&output, "o", "out.ram", "Listing output ('-' for stdout)")
	flag.StringVar(&config, "c", "inslist.eepc", "Instruction set description")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Predefine `NAME=VALUE` for $(...) expressions", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return errors.New("expected NAME=VALUE")
		}
		predefine[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	input := flag.Arg(0)

	assembler := &asm.Assembler{Verbose: verbose}
	for name, value := range predefine {
		assembler.Predefine(name, value)
	}

	cf, err := os.Open(config)
	if err != nil {
		log.Fatalf("can't open instruction list config file '%v': %v", config, err)
	}
	err = assembler.LoadTable(cf)
	cf.Close()
	if err != nil {
		log.Fatalf("%v: %v", config, err)
	}

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("can't open input file '%v': %v", input, err)
	}
	prog, err := assembler.Parse(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	// Nothing is written unless the whole source assembled.
	listing := &bytes.Buffer{}
	_, err = prog.WriteTo(listing)
	if err != nil {
		log.Fatal(err)
	}

	if output == "-" {
		_, err = os.Stdout.Write(listing.Bytes())
	} else {
		err = os.WriteFile(output, listing.Bytes(), 0o644)
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
