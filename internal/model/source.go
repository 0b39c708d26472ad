// Package model defines the data structures shared by the paramfix layers.
package model

// Path represents a file system path.
type Path string

// Candidate is a discovered route file together with the number of handler
// signatures in it that still need rewriting.
type Candidate struct {
	Path    Path
	Pending int
	Err     error // read error; Pending is meaningless when set
}
