package znode

import (
	"github.com/go-zookeeper/zk"
)

type ZNode struct {
	// Name is the full path of the node.
	Name     string
	Stat     zk.Stat
	Children map[string]*ZNode

	// Data is the data stored here by the client.
	Data []byte
}

func NewZNode(name string, data []byte) *ZNode {
	return &ZNode{
		Name: name,
		// Init the children to an empty map instead of nil to avoid panics when writing to
		// a nil map.
		Children: map[string]*ZNode{},
		Data:     cloneBytes(data),
	}
}

// IsEphemeral reports whether the node is owned by a session.
func (z *ZNode) IsEphemeral() bool {
	return z.Stat.EphemeralOwner != 0
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
