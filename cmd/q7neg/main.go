// Command q7neg negates Q7 fixed-point samples with saturation.
//
// Usage:
//
//	q7neg [flags] value ...
//
// Values are Q7 integers in [-128, 127] unless -float is given, in which
// case they are fractions in [-1, 1) that are rounded and saturated to Q7
// first.
//
// Examples:
//
//	q7neg 5 -128 -1 0 127
//	q7neg -float 0.5 -1 0.999
//	q7neg -generic -128 64
//	q7neg -list
//
// Flag parsing stops at the first argument that parses as a number, so
// negative values such as -128 are never mistaken for flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fixedpoint/dsp/fixed"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var errNoValues = errors.New("q7neg: no input values")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("q7neg", flag.ContinueOnError)
	fs.SetOutput(stderr)

	asFloat := fs.Bool("float", false, "interpret values as fractions in [-1, 1)")
	forceGeneric := fs.Bool("generic", false, "force the scalar kernel")
	list := fs.Bool("list", false, "list registered kernels and the selected one")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: q7neg [flags] value ...\n\n")
		fmt.Fprintf(stderr, "Negates Q7 fixed-point samples with saturation (-128 -> 127).\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  q7neg 5 -128 -1 0 127\n")
		fmt.Fprintf(stderr, "  q7neg -float 0.5 -1 0.999\n")
		fmt.Fprintf(stderr, "  q7neg -list\n")
	}

	flagArgs, valueArgs := splitArgs(args)
	if err := fs.Parse(flagArgs); err != nil {
		return 2
	}

	if *forceGeneric {
		features := cpu.DetectFeatures()
		features.ForceGeneric = true
		cpu.SetForcedFeatures(features)
	}

	if *list {
		printKernels(stdout)
		return 0
	}

	values := make([]string, 0, fs.NArg()+len(valueArgs))
	values = append(values, fs.Args()...)
	values = append(values, valueArgs...)

	src, err := parseValues(values, *asFloat)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	dst := make([]fixed.Q7, len(src))
	fixed.Negate(dst, src)

	if err := printTable(stdout, src, dst); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// splitArgs separates leading flags from values. The first argument that
// parses as a number, and everything after it, is a value.
func splitArgs(args []string) (flags, values []string) {
	for i, arg := range args {
		if _, err := strconv.ParseFloat(strings.TrimSpace(arg), 64); err == nil {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

func parseValues(args []string, asFloat bool) ([]fixed.Q7, error) {
	if len(args) == 0 {
		return nil, errNoValues
	}

	out := make([]fixed.Q7, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if asFloat {
			f, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil, fmt.Errorf("q7neg: invalid float %q: %w", arg, err)
			}
			out = append(out, fixed.FromFloat(f))
			continue
		}

		v, err := strconv.ParseInt(arg, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("q7neg: invalid Q7 value %q: %w", arg, err)
		}
		out = append(out, fixed.Q7(v))
	}
	return out, nil
}

func printKernels(w io.Writer) {
	selected := fixed.Implementation()
	for _, name := range fixed.Kernels() {
		marker := " "
		if name == selected {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
}

func printTable(w io.Writer, src, dst []fixed.Q7) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Index\tIn\tIn [frac]\tOut\tOut [frac]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t--\t---------\t---\t----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for i := range src {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.6f\t%d\t%.6f\n",
			i,
			int8(src[i]),
			src[i].Float(),
			int8(dst[i]),
			dst[i].Float(),
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
