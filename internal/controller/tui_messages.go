package controller

import "time"

// Message types.
type tickMsg time.Time

type candidatesMsg struct {
	items []candidateItem
	total int // pending rewrites across all files
}

// List item types.
type candidateItem struct {
	path    string
	pending int
	failed  bool
}

func (c candidateItem) FilterValue() string {
	return c.path
}
