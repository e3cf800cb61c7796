package disasm

// callStack contains the internal addresses of call sites of an exploration path.
// It is never modified in place, push returns a copy, so that paths forked at a
// conditional skip can share the same snapshot.
//
// The binary carries no return addresses, the stack only simulates them. A
// subroutine that is reachable from multiple call sites is explored once, from
// the first path that reaches it, so returns of later call sites are not resolved.
type callStack []int

func (s callStack) push(site int) callStack {
	stack := make(callStack, len(s), len(s)+1)
	copy(stack, s)
	return append(stack, site)
}

// pop returns the most recent call site and the remaining stack.
func (s callStack) pop() (int, callStack, bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	return s[len(s)-1], s[:len(s)-1], true
}
