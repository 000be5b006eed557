package zookeeper

import (
	"github.com/go-zookeeper/zk"
)

// AnyVersion skips the version check on Set and Delete.
const AnyVersion int32 = -1

// PersistentNode is the flag value for a regular, non-sequential ZNode.
const PersistentNode int32 = 0

// OpenACL grants every permission to everyone. Nodes created by EnsurePath use it.
var OpenACL = zk.WorldACL(zk.PermAll)
