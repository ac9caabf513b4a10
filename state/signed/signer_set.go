package signed

import (
	"sync"

	"github.com/swirldnet/swirld-go/model/swirld"
)

// signerSet tracks which nodes have already been credited for a signature,
// so that a node gossiping its signature twice does not double its weight.
type signerSet struct {
	mu    sync.Mutex
	nodes map[swirld.NodeID]struct{}
}

func (ss *signerSet) init() {
	ss.nodes = make(map[swirld.NodeID]struct{})
}

// add records the node and reports whether it was newly added.
func (ss *signerSet) add(id swirld.NodeID) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if _, ok := ss.nodes[id]; ok {
		return false
	}
	ss.nodes[id] = struct{}{}
	return true
}
