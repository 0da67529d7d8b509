// Package main provides the backprop CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/born-ml/backprop/dataset"
	"github.com/born-ml/backprop/network"
	"github.com/klauspost/cpuid/v2"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("backprop: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	args := os.Args[2:]
	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(args)
	case "train":
		err = runTrain(args)
	case "test":
		err = runTest(args)
	case "inspect":
		err = runInspect(args)
	case "version":
		printVersion()
	case "help", "-h", "-help", "--help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Println("backprop - online backpropagation for small feed-forward networks")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  generate   Write a training file for a boolean function")
	fmt.Println("  train      Train a network on a training file and save it")
	fmt.Println("  test       Run a saved network on an input or a training file")
	fmt.Println("  inspect    Print topology, diagnostics and fingerprint of a saved network")
	fmt.Println("  version    Show version")
}

func printVersion() {
	fmt.Printf("backprop %s\n", version)
	fmt.Printf("Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Printf("CPU: %s (%d cores, %d threads)\n", cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	out := fs.String("out", "", "Output training file (default: stdout)")
	fn := fs.String("func", "mix", "Boolean function: "+strings.Join(dataset.FunctionNames(), ", "))
	n := fs.Int("n", 2000, "Number of cases")
	seed := fs.Int64("seed", 0, "Random seed")
	_ = fs.Parse(args)

	f, err := dataset.Lookup(*fn)
	if err != nil {
		return err
	}
	if *n <= 0 {
		return fmt.Errorf("-n must be positive, got %d", *n)
	}

	ds := dataset.Generate(*n, f, rand.New(rand.NewSource(*seed))) //nolint:gosec // G404: reproducible data, not crypto
	if *out == "" {
		return dataset.Write(os.Stdout, ds)
	}
	if err := dataset.WriteFile(*out, ds); err != nil {
		return err
	}
	log.Printf("wrote %d cases of %s to %s", ds.Len(), *fn, *out)
	return nil
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	data := fs.String("data", "", "Training file (required)")
	out := fs.String("out", "", "Where to save the trained network")
	initNet := fs.String("init", "", "Continue training a saved network")
	seed := fs.Int64("seed", 1, "Weight initialization seed")
	cycles := fs.Int("cycles", 1, "Passes over the training file")
	logEvery := fs.Int("log-every", 0, "Log every N presentations (0 = off)")
	_ = fs.Parse(args)

	if *data == "" {
		return fmt.Errorf("-data is required")
	}

	ds, err := dataset.ReadFile(*data)
	if err != nil {
		return err
	}

	net, err := openOrCreate(*initNet, ds.Topology, *seed)
	if err != nil {
		return err
	}

	trainer := network.NewTrainer(network.TrainerConfig{
		Cycles:   *cycles,
		LogEvery: *logEvery,
		Logger:   log.Default(),
	})
	rep, err := trainer.Run(net, ds)
	if err != nil {
		return err
	}
	fmt.Printf("trained on %d presentations: error %.6f, average error %.6f\n",
		rep.Presentations, rep.ErrorRate, rep.AverageError)

	if net.InputWidth() == 2 {
		probe := []float64{0, 1}
		res, err := net.Predict(probe)
		if err != nil {
			return err
		}
		fmt.Printf("test run: inputs %s -> outputs %s\n", formatValues(probe), formatValues(res))
	}

	if *out == "" {
		return nil
	}
	if err := network.Save(*out, net); err != nil {
		return err
	}
	log.Printf("saved network to %s", *out)
	return nil
}

func openOrCreate(path string, topology []int, seed int64) (*network.Network, error) {
	if path == "" {
		return network.New(topology, network.Config{
			Source: rand.New(rand.NewSource(seed)), //nolint:gosec // G404: reproducible weights, not crypto
		})
	}

	net, err := network.Load(path)
	if err != nil {
		return nil, err
	}
	if !slices.Equal(net.Topology(), topology) {
		return nil, fmt.Errorf("%w: network %v, training file %v",
			network.ErrDatasetMismatch, net.Topology(), topology)
	}
	return net, nil
}

func runTest(args []string) error {
	fs := flag.NewFlagSet("test", flag.ExitOnError)
	netPath := fs.String("net", "", "Saved network (required)")
	input := fs.String("input", "0,1", "Comma-separated input values")
	data := fs.String("data", "", "Evaluate a training file instead of -input")
	_ = fs.Parse(args)

	if *netPath == "" {
		return fmt.Errorf("-net is required")
	}
	net, err := network.Load(*netPath)
	if err != nil {
		return err
	}

	if *data != "" {
		ds, err := dataset.ReadFile(*data)
		if err != nil {
			return err
		}
		ev, err := network.Evaluate(net, ds)
		if err != nil {
			return err
		}
		fmt.Printf("%d cases: max abs error %.6f, rms error %.6f\n", len(ev.Results), ev.MaxAbsError, ev.RMSError)
		return nil
	}

	values, err := parseValues(*input)
	if err != nil {
		return err
	}
	res, err := net.Predict(values)
	if err != nil {
		return err
	}
	fmt.Printf("inputs %s -> outputs %s\n", formatValues(values), formatValues(res))
	return nil
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	netPath := fs.String("net", "", "Saved network (required)")
	_ = fs.Parse(args)

	if *netPath == "" {
		return fmt.Errorf("-net is required")
	}
	net, err := network.Load(*netPath)
	if err != nil {
		return err
	}
	fp, err := network.Fingerprint(net)
	if err != nil {
		return err
	}

	fmt.Printf("Topology:          %v\n", net.Topology())
	fmt.Printf("Error rate:        %.6f\n", net.ErrorRate())
	fmt.Printf("Average error:     %.6f\n", net.AverageError())
	fmt.Printf("Smoothing factor:  %g\n", net.SmoothingFactor())
	fmt.Printf("Fingerprint:       %s\n", fp)
	return nil
}

// parseValues parses a comma-separated list of floats such as "0,1".
func parseValues(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse input %q: %w", f, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no input values in %q", s)
	}
	return values, nil
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', 6, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
