package znode

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/mikekulinski/zkcli/pkg/zookeeper"
	"github.com/mikekulinski/zkcli/pkg/zxid"
)

// SessionID is the ephemeral owner recorded on ephemeral nodes created through a DB.
const SessionID int64 = 0x1000

// DB is an in-memory ZNode tree that answers the same calls as a live connection,
// including the stat bookkeeping and error values of the real service. It controls
// the locking mechanism, so it can be abstracted away from the caller.
type DB struct {
	root *ZNode
	mu   *sync.RWMutex
	// lastZxid is the zxid of the most recent write.
	lastZxid zxid.ZXID
	closed   bool
	now      func() time.Time
}

var _ zookeeper.Conn = (*DB)(nil)

func NewDB() *DB {
	return &DB{
		root:     NewZNode("/", nil),
		mu:       &sync.RWMutex{},
		lastZxid: zxid.NewZXID(1, 0),
		now:      time.Now,
	}
}

// LastZxid returns the zxid of the most recent write.
func (d *DB) LastZxid() zxid.ZXID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastZxid
}

func (d *DB) Create(path string, data []byte, flags int32, _ []zk.ACL) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return "", zk.ErrConnectionClosed
	}
	if !isValidPath(path) {
		return "", zk.ErrInvalidPath
	}
	if path == "/" {
		return "", zk.ErrNodeExists
	}
	names := splitPathIntoNodeNames(path)

	// Search down the tree until we hit the parent where we'll be creating this new node.
	parent := findZNode(d.root, names[:len(names)-1])
	if parent == nil {
		return "", zk.ErrNoNode
	}
	if parent.IsEphemeral() {
		return "", zk.ErrNoChildrenForEphemerals
	}

	newName := names[len(names)-1]
	if flags&zk.FlagSequence != 0 {
		newName = fmt.Sprintf("%s%010d", newName, parent.Stat.Cversion)
	}
	if _, ok := parent.Children[newName]; ok {
		return "", zk.ErrNodeExists
	}

	txn := d.nextZxid()
	now := d.now().UnixMilli()
	node := NewZNode(newFullName(newName, names[:len(names)-1]), data)
	node.Stat = zk.Stat{
		Czxid:      txn,
		Mzxid:      txn,
		Pzxid:      txn,
		Ctime:      now,
		Mtime:      now,
		DataLength: int32(len(data)),
	}
	if flags&zk.FlagEphemeral != 0 {
		node.Stat.EphemeralOwner = SessionID
	}

	parent.Children[newName] = node
	parent.Stat.Cversion++
	parent.Stat.NumChildren = int32(len(parent.Children))
	parent.Stat.Pzxid = txn
	return node.Name, nil
}

func (d *DB) Set(path string, data []byte, version int32) (*zk.Stat, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	node, err := d.lookup(path)
	if err != nil {
		return nil, err
	}
	if !isValidVersion(version, node.Stat.Version) {
		return nil, zk.ErrBadVersion
	}
	node.Data = cloneBytes(data)
	node.Stat.Version++
	node.Stat.Mzxid = d.nextZxid()
	node.Stat.Mtime = d.now().UnixMilli()
	node.Stat.DataLength = int32(len(data))
	stat := node.Stat
	return &stat, nil
}

func (d *DB) Get(path string) ([]byte, *zk.Stat, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	node, err := d.lookup(path)
	if err != nil {
		return nil, nil, err
	}
	stat := node.Stat
	return cloneBytes(node.Data), &stat, nil
}

// Exists mirrors go-zookeeper: a missing node is not an error and comes back with
// an empty stat.
func (d *DB) Exists(path string) (bool, *zk.Stat, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	node, err := d.lookup(path)
	if err == zk.ErrNoNode {
		return false, &zk.Stat{}, nil
	}
	if err != nil {
		return false, nil, err
	}
	stat := node.Stat
	return true, &stat, nil
}

func (d *DB) Delete(path string, version int32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return zk.ErrConnectionClosed
	}
	if !isValidPath(path) {
		return zk.ErrInvalidPath
	}
	if path == "/" {
		return zk.ErrBadArguments
	}
	names := splitPathIntoNodeNames(path)

	parent := findZNode(d.root, names[:len(names)-1])
	if parent == nil {
		return zk.ErrNoNode
	}
	nameToDelete := names[len(names)-1]
	node, ok := parent.Children[nameToDelete]
	if !ok {
		return zk.ErrNoNode
	}
	if !isValidVersion(version, node.Stat.Version) {
		return zk.ErrBadVersion
	}
	if len(node.Children) > 0 {
		return zk.ErrNotEmpty
	}

	delete(parent.Children, nameToDelete)
	parent.Stat.Cversion++
	parent.Stat.NumChildren = int32(len(parent.Children))
	parent.Stat.Pzxid = d.nextZxid()
	return nil
}

// Children returns the names of the children of path in lexical order.
func (d *DB) Children(path string) ([]string, *zk.Stat, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	node, err := d.lookup(path)
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	stat := node.Stat
	return names, &stat, nil
}

// Close makes every later call fail with zk.ErrConnectionClosed. The tree is kept.
func (d *DB) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

// lookup must be called with the lock held.
func (d *DB) lookup(path string) (*ZNode, error) {
	if d.closed {
		return nil, zk.ErrConnectionClosed
	}
	if !isValidPath(path) {
		return nil, zk.ErrInvalidPath
	}
	node := findZNode(d.root, splitPathIntoNodeNames(path))
	if node == nil {
		return nil, zk.ErrNoNode
	}
	return node, nil
}

// nextZxid must be called with the write lock held.
func (d *DB) nextZxid() int64 {
	d.lastZxid = d.lastZxid.Next()
	return int64(d.lastZxid)
}

// findZNode will search down to the tree and return the node specified by the names.
// If the node could not be found, then we will return nil.
func findZNode(start *ZNode, names []string) *ZNode {
	node := start
	for _, name := range names {
		z, ok := node.Children[name]
		if !ok {
			return nil
		}
		node = z
	}
	return node
}

func splitPathIntoNodeNames(path string) []string {
	if path == "/" {
		return nil
	}
	// Since we have a leading /, then we expect the first name to be empty.
	return strings.Split(path, "/")[1:]
}

func newFullName(nodeName string, ancestorsNames []string) string {
	nodePath := "/" + nodeName
	if len(ancestorsNames) > 0 {
		return "/" + strings.Join(ancestorsNames, "/") + nodePath
	}
	return nodePath
}

func isValidPath(path string) bool {
	if path == "/" {
		return true
	}
	if !strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return false
	}
	for _, name := range strings.Split(path, "/")[1:] {
		if name == "" {
			return false
		}
	}
	return true
}

// isValidVersion is used for conditional checks for update/delete operations. If the passed in version
// is -1, then skip the version check. Otherwise, make sure the versions are equal.
func isValidVersion(expected, actual int32) bool {
	return expected == zookeeper.AnyVersion || expected == actual
}
