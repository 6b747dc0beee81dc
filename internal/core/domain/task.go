package domain

import "context"

// Operation is a single unit of asynchronous work. Returning signals completion;
// a non-nil error signals failure.
type Operation func(ctx context.Context) error

// Task is a node of a build graph: a Leaf, a Parallel or a Series.
// Graphs are plain values rebuilt for every run and hold no run state.
type Task interface {
	// TaskName returns a human-readable name used for spans and error context.
	TaskName() string
	isTask()
}

// Leaf wraps one operation.
type Leaf struct {
	Name string
	Op   Operation
}

// Parallel runs its children concurrently and completes once all of them have.
type Parallel struct {
	Name     string
	Children []Task
}

// Series runs its children one after another.
type Series struct {
	Name     string
	Children []Task
}

// TaskName implements Task.
func (l Leaf) TaskName() string { return l.Name }

// TaskName implements Task.
func (p Parallel) TaskName() string { return p.Name }

// TaskName implements Task.
func (s Series) TaskName() string { return s.Name }

func (Leaf) isTask()     {}
func (Parallel) isTask() {}
func (Series) isTask()   {}

// NewLeaf returns a Leaf task.
func NewLeaf(name string, op Operation) Task {
	return Leaf{Name: name, Op: op}
}

// NewParallel returns a Parallel task over children.
func NewParallel(name string, children ...Task) Task {
	return Parallel{Name: name, Children: children}
}

// NewSeries returns a Series task over children.
func NewSeries(name string, children ...Task) Task {
	return Series{Name: name, Children: children}
}

// LeafCount returns the number of leaves reachable from t.
func LeafCount(t Task) int {
	switch v := t.(type) {
	case Leaf:
		return 1
	case Parallel:
		return leafCount(v.Children)
	case Series:
		return leafCount(v.Children)
	default:
		return 0
	}
}

func leafCount(children []Task) int {
	n := 0
	for _, c := range children {
		n += LeafCount(c)
	}
	return n
}
