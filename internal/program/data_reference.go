package program

import "fmt"

const dataNaming = "dat_%03X"

// DataReference is a memory address that is loaded into the I register by
// at least one discovered instruction, usually sprite or BCD data.
type DataReference struct {
	Address uint16   // logical address of the data
	Name    string   // label of the data
	UsageAt []uint16 // logical addresses of all instructions that reference it
}

// DataName returns the label name for data at a logical address.
func DataName(address uint16) string {
	return fmt.Sprintf(dataNaming, address)
}

// NewDataReference returns a data reference without usages.
func NewDataReference(address uint16) DataReference {
	return DataReference{
		Address: address,
		Name:    DataName(address),
	}
}

// DataReference returns the data reference for the given logical address.
func (p *Program) DataReference(address uint16) (DataReference, bool) {
	for _, ref := range p.DataReferences {
		if ref.Address == address {
			return ref, true
		}
	}
	return DataReference{}, false
}
