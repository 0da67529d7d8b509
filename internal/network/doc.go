// Package network assembles neurons into a layered feed-forward network and
// drives the forward pass, the backward pass and the structured snapshot of
// the learned state.
//
// A network is built from a topology, the neuron count of each layer without
// bias neurons:
//
//	net, err := network.New([]int{2, 4, 1}, network.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	for _, c := range cases {
//	    if err := net.Forward(c.Input); err != nil {
//	        return err
//	    }
//	    if err := net.Backward(c.Target); err != nil {
//	        return err
//	    }
//	}
//	fmt.Println(net.Results(), net.AverageError())
//
// Each backward pass records the root mean square error of the presentation
// (ErrorRate) and folds it into an exponentially smoothed average
// (AverageError):
//
//	avg = (avg*smoothing + err) / (smoothing + 1)
//
// Record and FromRecord convert the network to and from a nested record with
// the JSON keys "Error Rate", "Average Error", "Average Smoothing Factor" and
// "Layers".
package network
