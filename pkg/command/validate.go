package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPath        = errors.New("invalid path")
	ErrNegativeRandomSize = errors.New("random size must not be negative")
)

// ValidatePath verifies that the path received from the command line is an
// absolute ZNode path. The root itself is accepted.
func ValidatePath(path string) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %q does not start at the root", ErrInvalidPath, path)
	}
	if path == "/" {
		return nil
	}
	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("%w: %q should end in a node name, not a '/'", ErrInvalidPath, path)
	}

	// Since we have a leading /, then we expect the first name to be empty.
	for _, name := range strings.Split(path, "/")[1:] {
		if name == "" {
			return fmt.Errorf("%w: %q contains an empty node name", ErrInvalidPath, path)
		}
	}
	return nil
}

// Validate checks the arguments carried by a command.
func Validate(c Command) error {
	if err := ValidatePath(c.Path()); err != nil {
		return err
	}
	switch v := c.(type) {
	case Create:
		return validateWrite(v.Write)
	case Set:
		return validateWrite(v.Write)
	}
	return nil
}

func validateWrite(w Write) error {
	if w.RandomSize < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRandomSize, w.RandomSize)
	}
	return nil
}
