// Package serialization saves and loads networks as JSON records.
//
// A saved network is a single JSON object:
//
//	{
//	  "Error Rate": 0.012,
//	  "Average Error": 0.034,
//	  "Average Smoothing Factor": 100,
//	  "Layers": [
//	    [
//	      {
//	        "Index": 0,
//	        "Gradient": 0.0017,
//	        "Previous Output Value": 1,
//	        "Connections": [{"weight": 0.41, "deltaWeight": -0.002}, ...]
//	      },
//	      ...
//	    ],
//	    ...
//	  ]
//	}
//
// Every non-output layer ends with its bias neuron. Floats are written with
// the shortest representation that parses back to the same value, so a
// save/load cycle restores the network bit for bit.
//
// Files are written to a uniquely named temporary file in the target
// directory and renamed into place, so a crash never leaves a truncated
// network behind.
//
// Example usage:
//
//	// Save a network
//	if err := serialization.SaveFile("mix.net", net); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load it back with strict validation
//	net, err := serialization.LoadFile("mix.net")
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization
