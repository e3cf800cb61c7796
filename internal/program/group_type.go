package program

import "strings"

// GroupType describes how the entry of a code group was reached.
// A group can be reached in multiple ways, the types are flags.
type GroupType uint8

// group types.
const (
	UnknownGroup    GroupType = 0
	EntryPoint      GroupType = 1 << iota // program start at the base address
	JumpDestination                       // target of a JP addr
	CallDestination                       // target of a CALL addr, indicating a subroutine
	ReturnSite                            // instruction following a call site, resolved by a RET
	SkipDestination                       // landing address of a taken conditional skip
)

var groupTypeNames = []struct {
	typ  GroupType
	name string
}{
	{EntryPoint, "entry"},
	{JumpDestination, "jump"},
	{CallDestination, "call"},
	{ReturnSite, "return"},
	{SkipDestination, "skip"},
}

// IsType returns whether the group is of given type.
func (g *CodeGroup) IsType(typ GroupType) bool {
	return g.Type&typ != 0
}

// SetType sets the type of the group.
func (g *CodeGroup) SetType(typ GroupType) {
	g.Type |= typ
}

func (t GroupType) String() string {
	var names []string
	for _, entry := range groupTypeNames {
		if t&entry.typ != 0 {
			names = append(names, entry.name)
		}
	}
	if len(names) == 0 {
		return "unknown"
	}
	return strings.Join(names, ",")
}
