package trainingdata

import (
	"fmt"
	"sort"
)

// BoolFunc is a two-input boolean function to be learned.
type BoolFunc func(a, b bool) bool

// Functions lists the boolean functions available to Generate by name.
var Functions = map[string]BoolFunc{
	"and":  func(a, b bool) bool { return a && b },
	"or":   func(a, b bool) bool { return a || b },
	"xor":  func(a, b bool) bool { return a != b },
	"nand": func(a, b bool) bool { return !(a && b) },
	"nor":  func(a, b bool) bool { return !(a || b) },
	"xnor": func(a, b bool) bool { return a == b },
	// (a|b)&(a^b), which reduces to xor
	"mix": func(a, b bool) bool { return (a || b) && (a != b) },
}

// GeneratedTopology is the topology written by Generate and Truth.
var GeneratedTopology = []int{2, 4, 1}

// IntSource yields uniformly distributed integers in [0, n).
//
// *math/rand.Rand satisfies it.
type IntSource interface {
	Intn(n int) int
}

// Lookup returns the named function from Functions.
func Lookup(name string) (BoolFunc, error) {
	fn, ok := Functions[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownFunction, name, FunctionNames())
	}
	return fn, nil
}

// FunctionNames returns the names in Functions, sorted.
func FunctionNames() []string {
	names := make([]string, 0, len(Functions))
	for name := range Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate draws n random input pairs and labels each with fn.
func Generate(n int, fn BoolFunc, src IntSource) *Dataset {
	ds := newBoolDataset(n)
	for i := 0; i < n; i++ {
		a, b := src.Intn(2) == 1, src.Intn(2) == 1
		ds.add(a, b, fn)
	}
	return ds
}

// Truth returns the four canonical cases of fn, in the order
// (0,0), (0,1), (1,0), (1,1).
func Truth(fn BoolFunc) *Dataset {
	ds := newBoolDataset(4)
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			ds.add(a, b, fn)
		}
	}
	return ds
}

func newBoolDataset(capacity int) *Dataset {
	topology := make([]int, len(GeneratedTopology))
	copy(topology, GeneratedTopology)
	return &Dataset{
		Topology: topology,
		Inputs:   make([][]float64, 0, capacity),
		Targets:  make([][]float64, 0, capacity),
	}
}

func (d *Dataset) add(a, b bool, fn BoolFunc) {
	d.Inputs = append(d.Inputs, []float64{boolValue(a), boolValue(b)})
	d.Targets = append(d.Targets, []float64{boolValue(fn(a, b))})
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
