// Package trainingdata reads, writes and generates training cases for a
// feed-forward network.
//
// A training file starts with the topology, followed by alternating input and
// target lines, one pair per case:
//
//	Topology: 2,4,1
//	In: 0,1
//	Out: 1
//	In: 1,1
//	Out: 0
//
// Blank lines are ignored. Every input must have topology[0] values and every
// target topology[last] values.
package trainingdata
