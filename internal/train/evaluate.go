package train

import (
	"math"

	"github.com/born-ml/backprop/internal/network"
	"github.com/born-ml/backprop/internal/trainingdata"
	"gonum.org/v1/gonum/floats"
)

// Result is the network's answer for one case.
type Result struct {
	Input       []float64
	Target      []float64
	Output      []float64
	MaxAbsError float64 // Largest |target - output| over the outputs
}

// Evaluation collects the results of every case.
type Evaluation struct {
	Results     []Result
	MaxAbsError float64 // Largest MaxAbsError over all cases
	RMSError    float64 // Root mean square error over every output of every case
}

// Evaluate runs a forward pass for every case of ds without training.
func Evaluate(net *network.Network, ds *trainingdata.Dataset) (Evaluation, error) {
	if err := CheckShape(net, ds); err != nil {
		return Evaluation{}, err
	}

	ev := Evaluation{Results: make([]Result, 0, ds.Len())}
	var sumSquares float64
	for i := range ds.Inputs {
		out, err := net.Predict(ds.Inputs[i])
		if err != nil {
			return Evaluation{}, err
		}

		diff := make([]float64, len(out))
		floats.SubTo(diff, ds.Targets[i], out)
		maxAbs := floats.Norm(diff, math.Inf(1))
		sumSquares += floats.Dot(diff, diff)

		ev.Results = append(ev.Results, Result{
			Input:       ds.Inputs[i],
			Target:      ds.Targets[i],
			Output:      out,
			MaxAbsError: maxAbs,
		})
		ev.MaxAbsError = math.Max(ev.MaxAbsError, maxAbs)
	}

	if n := ds.Len() * ds.OutputWidth(); n > 0 {
		ev.RMSError = math.Sqrt(sumSquares / float64(n))
	}
	return ev, nil
}
