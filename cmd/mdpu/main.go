// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/mdpu/cpu"
	"github.com/ezrec/mdpu/emulator"
	"github.com/ezrec/mdpu/internal/expr"
)

// sample returns the reference program: 'r2 = a + b'.
func sample(a, b int32) cpu.Program {
	return cpu.Program{
		cpu.MakeLoadImmediate(0, a),
		cpu.MakeLoadImmediate(1, b),
		cpu.MakeAdd(0, 1, 2),
		cpu.MakeHalt(),
	}
}

func main() {
	var registers uint
	var memory uint
	var budget uint
	var a_expr string
	var b_expr string
	var listing bool
	var verbose bool

	flag.UintVar(&registers, "n", emulator.DEFAULT_REGISTERS, "Number of registers")
	flag.UintVar(&memory, "m", emulator.DEFAULT_MEMORY, "Memory size, in words")
	flag.UintVar(&budget, "max", emulator.DEFAULT_MAX_INSTRUCTIONS, "Maximum instruction count")
	flag.StringVar(&a_expr, "a", "10", "First operand expression")
	flag.StringVar(&b_expr, "b", "20", "Second operand expression")
	flag.BoolVar(&listing, "l", false, "Print the program listing")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	defines := map[string]int64{
		"REGISTERS": int64(registers),
		"MEMORY":    int64(memory),
	}

	a, err := expr.Eval(a_expr, defines)
	if err != nil {
		log.Fatalf("-a: %v", err)
	}
	defines["A"] = int64(a)

	b, err := expr.Eval(b_expr, defines)
	if err != nil {
		log.Fatalf("-b: %v", err)
	}

	st, err := cpu.NewState(registers, memory)
	if err != nil {
		log.Fatal(err)
	}

	prog := sample(a, b)
	if listing {
		fmt.Print(prog.String())
	}

	emu := emulator.NewEmulator(prog, budget)
	emu.Verbose = verbose

	snap, err := emu.Run(st)
	if err != nil {
		if verbose {
			log.Print(st.String())
		}
		log.Fatal(err)
	}

	fmt.Println(snap.String())
}
