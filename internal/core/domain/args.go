package domain

// Arguments is a persistent stack of integers.
// Push never modifies the receiver, so sibling evaluations that share a
// stack cannot observe each other's pushes or pops. The zero value is empty.
type Arguments struct {
	top *argNode
}

type argNode struct {
	value int
	next  *argNode
	size  int
}

// Head returns the top value, or 0 when the stack is empty.
func (a Arguments) Head() int {
	if a.top == nil {
		return 0
	}
	return a.top.value
}

// Tail returns the stack without its top value.
// An empty stack is returned unchanged.
func (a Arguments) Tail() Arguments {
	if a.top == nil {
		return a
	}
	return Arguments{top: a.top.next}
}

// Push returns a new stack with v on top.
func (a Arguments) Push(v int) Arguments {
	return Arguments{top: &argNode{value: v, next: a.top, size: a.Len() + 1}}
}

// Len returns the number of values on the stack.
func (a Arguments) Len() int {
	if a.top == nil {
		return 0
	}
	return a.top.size
}

// Values returns the stack contents, most recently pushed first.
func (a Arguments) Values() []int {
	values := make([]int, 0, a.Len())
	for n := a.top; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}
