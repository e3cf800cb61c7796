package disasm

import (
	"fmt"
	"slices"

	"github.com/retroenv/chip8disasm/internal/arch/chip8"
	"github.com/retroenv/chip8disasm/internal/program"
	"github.com/retroenv/chip8disasm/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// explore decodes instructions of a path until it ends in a control transfer,
// reaches visited code or the end of the ROM. Successor paths are pushed to
// the work-list of the traversal.
func (dis *Disasm) explore(t *traversal, p path) {
	group := p.group
	if group == nil {
		group = program.NewCodeGroup(rom.Logical(p.address), p.typ)
	}
	address := p.address

	for {
		if t.isVisited(address) {
			dis.abandon(t, group)
			return
		}

		if address >= dis.rom.Len() {
			t.commit(group)
			return
		}

		if t.isVisited(address-1) || t.isVisited(address+1) {
			t.diagnose(rom.Logical(address), program.OverlappingInstruction, "")
			t.commit(group)
			return
		}

		word, err := dis.rom.Word(address)
		if err != nil {
			t.diagnose(rom.Logical(address), program.InstructionOutOfBounds, err.Error())
			t.commit(group)
			return
		}

		instruction := chip8.Decode(rom.Logical(address), chip8.Opcode(word))
		t.visited.Add(uint16(address))
		group.Add(instruction)
		dis.inspect(t, instruction)

		switch {
		case instruction.IsReturn():
			t.commit(group)
			dis.handleReturn(t, address, p.calls)
			return

		case instruction.IsJump():
			t.commit(group)
			dis.addPath(t, instruction, rom.Internal(instruction.Target), program.JumpDestination, p.calls)
			return

		case instruction.IsCall():
			t.commit(group)
			dis.addPath(t, instruction, rom.Internal(instruction.Target), program.CallDestination, p.calls.push(address))
			return

		case instruction.IsSkip():
			// the continuation is pushed first so that the skip-taken path
			// is processed completely before the fallthrough resumes.
			t.push(path{
				address: address + chip8.OpcodeSize,
				group:   group,
				typ:     p.typ,
				calls:   p.calls,
			})
			dis.addPath(t, instruction, address+2*chip8.OpcodeSize, program.SkipDestination, p.calls)
			return

		default:
			address += chip8.OpcodeSize
		}
	}
}

// abandon ends a path that reached an already visited address. Groups are
// contiguous, so the visited address is the end address of the group.
func (dis *Disasm) abandon(t *traversal, group *program.CodeGroup) {
	if group.Empty() {
		return
	}

	if dis.options.DiscardPartialGroups {
		dis.logger.Debug("Discarding partial code group",
			log.String("label", group.Label),
			log.Int("instructions", len(group.Instructions)))
		return
	}

	group.Next = program.Label(group.EndAddress())
	t.commit(group)
}

// handleReturn continues the execution after the call site that is on top of
// the call stack of the path.
func (dis *Disasm) handleReturn(t *traversal, address int, calls callStack) {
	site, remaining, ok := calls.pop()
	if !ok {
		t.diagnose(rom.Logical(address), program.UnresolvedReturn, "")
		if dis.options.StrictReturns {
			dis.logger.Warn("Return without call site",
				log.String("address", fmt.Sprintf("$%03X", rom.Logical(address))))
		}
		return
	}

	returnAddress := site + chip8.OpcodeSize
	if !dis.rom.Contains(returnAddress) {
		t.diagnose(rom.Logical(address), program.TargetOutOfBounds,
			fmt.Sprintf("return to $%03X", rom.Logical(returnAddress)))
		return
	}

	t.branchDestinations[rom.Logical(returnAddress)] |= program.ReturnSite
	t.push(path{
		address: returnAddress,
		typ:     program.ReturnSite,
		calls:   remaining,
	})
}

// addPath queues a new path at the internal target address if it is inside
// of the ROM.
func (dis *Disasm) addPath(t *traversal, instruction chip8.Instruction, target int,
	typ program.GroupType, calls callStack) {

	if !dis.rom.Contains(target) {
		logical := int(rom.BaseAddress) + target
		t.diagnose(instruction.Address, program.TargetOutOfBounds,
			fmt.Sprintf("%s to $%03X", instruction.Flow, logical))
		return
	}

	t.branchDestinations[rom.Logical(target)] |= typ
	t.push(path{
		address: target,
		typ:     typ,
		calls:   calls,
	})
}

// inspect records data references and diagnostics for decoded instructions
// that the traversal can not follow or understand.
func (dis *Disasm) inspect(t *traversal, instruction chip8.Instruction) {
	switch {
	case instruction.Unrecognized:
		t.diagnose(instruction.Address, program.UnrecognizedOpcode, instruction.Mnemonic)

	case instruction.IsIndirectJump():
		t.diagnose(instruction.Address, program.IndirectJump, instruction.Mnemonic)

	case instruction.IsDataReference():
		address := instruction.Opcode.NNN()
		t.dataReferences[address] = append(t.dataReferences[address], instruction.Address)
	}
}

// processDataReferences returns all referenced data addresses sorted by
// address, to avoid random map order in the output.
func (dis *Disasm) processDataReferences(t *traversal) []program.DataReference {
	addresses := make([]uint16, 0, len(t.dataReferences))
	for address := range t.dataReferences {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)

	refs := make([]program.DataReference, 0, len(addresses))
	for _, address := range addresses {
		ref := program.NewDataReference(address)
		ref.UsageAt = t.dataReferences[address]
		slices.Sort(ref.UsageAt)
		refs = append(refs, ref)
	}
	return refs
}

// processBranchDestinations sets the types of all code groups that start at
// an address that was reached by multiple kinds of branches.
func (dis *Disasm) processBranchDestinations(t *traversal) {
	for _, group := range t.groups {
		typ, ok := t.branchDestinations[group.Address]
		if !ok {
			continue
		}
		group.SetType(typ)
	}
}
