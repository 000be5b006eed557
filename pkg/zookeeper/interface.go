package zookeeper

import (
	"github.com/go-zookeeper/zk"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_zookeeper.go -package=mock_zookeeper

// Conn is the subset of *zk.Conn this client relies on. Anything else that speaks
// the same API (such as the in-memory tree in pkg/znode) can stand in for it.
type Conn interface {
	// Create creates a ZNode with path name path, stores data in it, and returns the name of the new ZNode.
	// Flags can also be passed to pick certain attributes you want the ZNode to have.
	Create(path string, data []byte, flags int32, acl []zk.ACL) (string, error)
	// Set writes data to the ZNode path if the version number is the current version of the ZNode.
	Set(path string, data []byte, version int32) (*zk.Stat, error)
	// Get returns the data and metadata, such as version information, associated with the ZNode.
	Get(path string) ([]byte, *zk.Stat, error)
	// Exists returns true if the ZNode with path name path exists, and returns false otherwise.
	Exists(path string) (bool, *zk.Stat, error)
	// Delete deletes the ZNode at the given path if that ZNode is at the expected version.
	Delete(path string, version int32) error
	// Children returns the set of names of the children of a ZNode.
	Children(path string) ([]string, *zk.Stat, error)
	Close()
}

// Session is an established connection used for exactly one operation.
type Session interface {
	// EnsurePath creates path and every missing ancestor with empty data.
	// Nodes that already exist are left untouched.
	EnsurePath(path string) error
	Set(path string, data []byte, version int32) (*zk.Stat, error)
	Get(path string) ([]byte, *zk.Stat, error)
	Exists(path string) (bool, *zk.Stat, error)
	Delete(path string, version int32) error
	// DeleteAll removes path and its entire subtree.
	DeleteAll(path string) error
	Close() error
}
