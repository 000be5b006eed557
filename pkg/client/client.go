package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-zookeeper/zk"
	"github.com/mikekulinski/zkcli/pkg/zookeeper"
)

// Client is an established session. It adds ensure-path and recursive delete on
// top of the primitives of a zookeeper.Conn.
type Client struct {
	conn zookeeper.Conn
}

var _ zookeeper.Session = (*Client)(nil)

func NewClient(conn zookeeper.Conn) *Client {
	return &Client{conn: conn}
}

// EnsurePath creates path and all of its missing ancestors with empty data. Nodes
// that already exist are left as they are.
func (c *Client) EnsurePath(path string) error {
	if path == "/" {
		return nil
	}
	// Since we have a leading /, then we expect the first name to be empty.
	names := strings.Split(path, "/")[1:]
	prefix := ""
	for _, name := range names {
		prefix += "/" + name
		_, err := c.conn.Create(prefix, nil, zookeeper.PersistentNode, zookeeper.OpenACL)
		if err != nil && !errors.Is(err, zk.ErrNodeExists) {
			return fmt.Errorf("ensure path %s: %w", prefix, err)
		}
	}
	return nil
}

// Set writes data to the ZNode path if the version number is the current version of the ZNode.
func (c *Client) Set(path string, data []byte, version int32) (*zk.Stat, error) {
	return c.conn.Set(path, data, version)
}

// Get returns the data and metadata, such as version information, associated with the ZNode.
func (c *Client) Get(path string) ([]byte, *zk.Stat, error) {
	return c.conn.Get(path)
}

// Exists returns true if the ZNode with path name path exists, and returns false otherwise.
// No watch is registered.
func (c *Client) Exists(path string) (bool, *zk.Stat, error) {
	return c.conn.Exists(path)
}

// Delete deletes the ZNode at the given path if that ZNode is at the expected version.
func (c *Client) Delete(path string, version int32) error {
	return c.conn.Delete(path, version)
}

// DeleteAll removes path and every node below it, children first. The root can't
// be removed and is refused before anything is touched.
func (c *Client) DeleteAll(path string) error {
	if path == "/" {
		return zk.ErrBadArguments
	}
	return c.deleteTree(path)
}

func (c *Client) deleteTree(path string) error {
	children, _, err := c.conn.Children(path)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := c.deleteTree(path + "/" + child); err != nil {
			return err
		}
	}
	return c.conn.Delete(path, zookeeper.AnyVersion)
}

// Close ends the session. go-zookeeper reports no error on close, so this always
// returns nil.
func (c *Client) Close() error {
	c.conn.Close()
	return nil
}
