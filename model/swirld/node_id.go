package swirld

import "strconv"

// NodeID uniquely identifies a node within an address book.
type NodeID uint64

func (id NodeID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
