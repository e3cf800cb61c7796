package disasm

import (
	"github.com/retroenv/chip8disasm/internal/program"
	"github.com/retroenv/retrogolib/set"
)

// path is a pending exploration of the execution flow.
type path struct {
	address int                // internal address to continue at
	group   *program.CodeGroup // uncommitted group to continue, nil starts a new group
	typ     program.GroupType  // how the address was reached, used for new groups
	calls   callStack          // call sites of this path
}

// traversal is the state of a single disassembly run. It is owned by one
// Process call and discarded after the program was built.
type traversal struct {
	visited set.Set[uint16] // internal addresses of all decoded instructions

	// pending paths, processed last in first out to keep the depth first order
	pending []path

	// logical branch destinations and how they were reached
	branchDestinations map[uint16]program.GroupType

	// logical data addresses and the instructions referencing them
	dataReferences map[uint16][]uint16

	groups      []*program.CodeGroup
	diagnostics []program.Diagnostic
}

func newTraversal() *traversal {
	return &traversal{
		visited:            set.New[uint16](),
		branchDestinations: map[uint16]program.GroupType{},
		dataReferences:     map[uint16][]uint16{},
	}
}

func (t *traversal) push(p path) {
	t.pending = append(t.pending, p)
}

func (t *traversal) pop() (path, bool) {
	if len(t.pending) == 0 {
		return path{}, false
	}
	p := t.pending[len(t.pending)-1]
	t.pending = t.pending[:len(t.pending)-1]
	return p, true
}

// commit appends a finished group to the result. Empty groups are dropped.
func (t *traversal) commit(group *program.CodeGroup) {
	if group.Empty() {
		return
	}
	t.groups = append(t.groups, group)
}

func (t *traversal) diagnose(address uint16, kind program.DiagnosticKind, message string) {
	t.diagnostics = append(t.diagnostics, program.Diagnostic{
		Address: address,
		Kind:    kind,
		Message: message,
	})
}

func (t *traversal) isVisited(address int) bool {
	if address < 0 {
		return false
	}
	return t.visited.Contains(uint16(address))
}
