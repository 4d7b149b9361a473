//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command yao demonstrates a garbled 3-bit adder: it garbles the
// circuit, evaluates it on the chosen operands, and prints the full
// sum and the final result (the sum shifted right by one bit).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/markkurossi/yao/circuit"
	"github.com/markkurossi/yao/logger"
	"github.com/rs/zerolog"
)

func main() {
	a := flag.Uint64("a", 5, "first operand (0-7)")
	b := flag.Uint64("b", 1, "second operand (0-7)")
	verbose := flag.Bool("v", false, "print wire labels and garbled tables")
	debug := flag.Bool("d", false, "debug output")
	flag.Parse()

	if !*debug {
		logger.Set(logger.Logger().Level(zerolog.InfoLevel))
	}
	log := logger.Logger()

	max := uint64(1)<<circuit.AdderBits - 1
	if *a > max || *b > max {
		log.Fatal().
			Uint64("a", *a).
			Uint64("b", *b).
			Msgf("operands must be in 0-%d", max)
	}

	aBits := circuit.Bits(*a, circuit.AdderBits)
	bBits := circuit.Bits(*b, circuit.AdderBits)

	circ, err := circuit.NewAdder(aBits, bBits)
	if err != nil {
		log.Fatal().Err(err).Msg("circuit construction failed")
	}

	fullSum, result, err := circ.Evaluate()
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}

	if *verbose {
		fmt.Println("Input wire labels and garbled tables:")
		circ.Tabulate(os.Stdout)
	}

	fmt.Printf("A         = %d %v\n", *a, aBits)
	fmt.Printf("B         = %d %v\n", *b, bBits)
	fmt.Printf("Sum       = %d %v\n", circuit.Uint(fullSum), fullSum)
	fmt.Printf("Sum >> 1  = %d %v\n", circuit.Uint(result), result)
}
