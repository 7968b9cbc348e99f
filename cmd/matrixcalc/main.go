// SPDX-License-Identifier: MIT

// Command matrixcalc evaluates one matrix request written in YAML.
//
// Usage:
//
//	matrixcalc [-config cfg.yaml] [-decimals N] [-f request.yaml]
//	matrixcalc -list
//
// Without -f the request is read from stdin:
//
//	echo 'op: inverse
//	a: [[4, 7], [2, 6]]' | matrixcalc -decimals 2
//
// Errors go to stderr and the exit status is 1.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lvlmatrix/engine"
	"github.com/katalvlaran/lvlmatrix/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "matrixcalc: ", 0)

	fs := flag.NewFlagSet("matrixcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML config file (singular_tolerance, max_dim, decimals)")
	decimals := fs.Int("decimals", -1, "decimal places in the output (overrides config)")
	reqPath := fs.String("f", "", "YAML request file (default stdin)")
	list := fs.Bool("list", false, "print the supported operations and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, op := range engine.Operations() {
			fmt.Fprintln(stdout, op)
		}

		return 0
	}

	cfg := engine.DefaultConfig()
	if *cfgPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(*cfgPath); err != nil {
			logger.Print(err)
			return 1
		}
	}
	if *decimals >= 0 {
		cfg.Decimals = *decimals
	}

	eng, err := engine.New(cfg)
	if err != nil {
		logger.Print(err)
		return 1
	}

	in := stdin
	if *reqPath != "" {
		f, err := os.Open(*reqPath)
		if err != nil {
			logger.Print(err)
			return 1
		}
		defer f.Close()
		in = f
	}

	req, err := engine.DecodeRequest(in)
	if err != nil {
		logger.Print(err)
		return 1
	}
	res, err := eng.Execute(req)
	if err != nil {
		logger.Print(err)
		return 1
	}
	fmt.Fprint(stdout, render.FormatResult(res, cfg.Decimals))

	return 0
}
