package command

// Kind names one of the supported operations. The set is closed.
type Kind string

const (
	KindCreate    Kind = "create"
	KindSet       Kind = "set"
	KindGet       Kind = "get"
	KindExists    Kind = "exists"
	KindDelete    Kind = "delete"
	KindDeleteAll Kind = "deleteall"
)

// Command is the single operation requested by one invocation. Only the types
// in this package implement it, so a type switch over them is exhaustive.
type Command interface {
	Kind() Kind
	// Path is the ZNode the operation targets.
	Path() string
	isCommand()
}

// Write holds the arguments shared by Create and Set.
type Write struct {
	NodePath string
	// Value is nil when no --value was given.
	Value *string
	// RandomSize, when > 0, replaces Value with a generated payload of that length.
	RandomSize int
}

// Data returns the payload to store. A positive RandomSize wins over Value, and a
// missing Value yields a generated payload of RandomSize bytes (possibly empty).
func (w Write) Data(generate func(size int) []byte) []byte {
	if w.RandomSize > 0 || w.Value == nil {
		return generate(w.RandomSize)
	}
	return []byte(*w.Value)
}

// Create makes sure the ZNode exists and writes data to it.
type Create struct{ Write }

// Set unconditionally overwrites the data of a ZNode, creating it if needed.
type Set struct{ Write }

// Get reads the data and stat of a ZNode.
type Get struct{ NodePath string }

// Exists reports the stat of a ZNode if it exists. No watch is left behind.
type Exists struct{ NodePath string }

// Delete removes exactly one ZNode. It fails if the node has children.
type Delete struct{ NodePath string }

// DeleteAll removes a ZNode together with its whole subtree.
type DeleteAll struct{ NodePath string }

func (Create) Kind() Kind    { return KindCreate }
func (Set) Kind() Kind       { return KindSet }
func (Get) Kind() Kind       { return KindGet }
func (Exists) Kind() Kind    { return KindExists }
func (Delete) Kind() Kind    { return KindDelete }
func (DeleteAll) Kind() Kind { return KindDeleteAll }

func (c Create) Path() string    { return c.NodePath }
func (c Set) Path() string       { return c.NodePath }
func (c Get) Path() string       { return c.NodePath }
func (c Exists) Path() string    { return c.NodePath }
func (c Delete) Path() string    { return c.NodePath }
func (c DeleteAll) Path() string { return c.NodePath }

func (Create) isCommand()    {}
func (Set) isCommand()       {}
func (Get) isCommand()       {}
func (Exists) isCommand()    {}
func (Delete) isCommand()    {}
func (DeleteAll) isCommand() {}
