// Package train runs online training of a network over a dataset and
// evaluates the result.
//
// Each case is presented once per cycle: a forward pass with its input
// followed by a backward pass with its target. There is no batching and no
// validation split.
package train
