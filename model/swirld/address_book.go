package swirld

import (
	"fmt"
	"sort"
)

// Address is one address book entry: a node and its consensus voting weight.
type Address struct {
	NodeID NodeID
	Weight uint64
}

// AddressBook is the set of nodes participating in consensus for a round,
// together with their voting weight. It is immutable once constructed; the
// total weight is computed at construction time.
type AddressBook struct {
	addresses   []Address
	byNode      map[NodeID]Address
	totalWeight uint64
}

// NewAddressBook constructs an address book from the given entries.
// The total weight of all entries must be positive: an address book with
// zero total weight cannot express any threshold and indicates a
// misconfigured network.
func NewAddressBook(addresses []Address) (*AddressBook, error) {
	byNode := make(map[NodeID]Address, len(addresses))
	total := uint64(0)
	for _, addr := range addresses {
		if _, ok := byNode[addr.NodeID]; ok {
			return nil, fmt.Errorf("duplicate node %v in address book", addr.NodeID)
		}
		byNode[addr.NodeID] = addr
		total += addr.Weight
	}
	if total == 0 {
		return nil, fmt.Errorf("address book has zero total weight")
	}

	sorted := make([]Address, len(addresses))
	copy(sorted, addresses)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].NodeID < sorted[j].NodeID })

	return &AddressBook{
		addresses:   sorted,
		byNode:      byNode,
		totalWeight: total,
	}, nil
}

// TotalWeight returns the sum of the voting weight of all nodes in the book.
func (ab *AddressBook) TotalWeight() uint64 {
	return ab.totalWeight
}

// Weight returns the voting weight of the given node, or zero if the node is
// not part of the address book.
func (ab *AddressBook) Weight(id NodeID) uint64 {
	return ab.byNode[id].Weight
}

// Size returns the number of nodes in the address book.
func (ab *AddressBook) Size() int {
	return len(ab.addresses)
}

// Addresses returns the entries ordered by node ID.
func (ab *AddressBook) Addresses() []Address {
	return ab.addresses
}
