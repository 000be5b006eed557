package command

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(size int) []byte {
	return bytes.Repeat([]byte{'r'}, size)
}

func ptr(s string) *string {
	return &s
}

func TestWrite_Data(t *testing.T) {
	tests := []struct {
		name     string
		write    Write
		expected []byte
	}{
		{
			name:     "value only",
			write:    Write{Value: ptr("hello")},
			expected: []byte("hello"),
		},
		{
			name:     "empty value",
			write:    Write{Value: ptr("")},
			expected: []byte{},
		},
		{
			name:     "no value, no size",
			write:    Write{},
			expected: []byte{},
		},
		{
			name:     "no value, random size",
			write:    Write{RandomSize: 4},
			expected: []byte("rrrr"),
		},
		{
			// A positive random size is preferred over an explicit value.
			name:     "random size overrides value",
			write:    Write{Value: ptr("hello"), RandomSize: 3},
			expected: []byte("rrr"),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.write.Data(fill))
		})
	}
}

func TestCommand_KindAndPath(t *testing.T) {
	tests := []struct {
		cmd  Command
		kind Kind
	}{
		{cmd: Create{Write{NodePath: "/a"}}, kind: KindCreate},
		{cmd: Set{Write{NodePath: "/a"}}, kind: KindSet},
		{cmd: Get{NodePath: "/a"}, kind: KindGet},
		{cmd: Exists{NodePath: "/a"}, kind: KindExists},
		{cmd: Delete{NodePath: "/a"}, kind: KindDelete},
		{cmd: DeleteAll{NodePath: "/a"}, kind: KindDeleteAll},
	}
	for _, test := range tests {
		t.Run(string(test.kind), func(t *testing.T) {
			assert.Equal(t, test.kind, test.cmd.Kind())
			assert.Equal(t, "/a", test.cmd.Path())
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		errorExpected bool
	}{
		{
			name:          "empty string",
			path:          "",
			errorExpected: true,
		},
		{
			name:          "not starting at root",
			path:          "node/other/one",
			errorExpected: true,
		},
		{
			name:          "not ending with node name",
			path:          "/a/b/",
			errorExpected: true,
		},
		{
			name:          "root",
			path:          "/",
			errorExpected: false,
		},
		{
			name:          "no parents",
			path:          "/x",
			errorExpected: false,
		},
		{
			name:          "multiple parents",
			path:          "/x/y/z",
			errorExpected: false,
		},
		{
			name:          "empty name between path separator",
			path:          "//y/z",
			errorExpected: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidatePath(test.path)
			if test.errorExpected {
				assert.ErrorIs(t, err, ErrInvalidPath)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Get{NodePath: "/a"}))
	require.NoError(t, Validate(Create{Write{NodePath: "/a", RandomSize: 10}}))
	assert.ErrorIs(t, Validate(Set{Write{NodePath: "/a", RandomSize: -1}}), ErrNegativeRandomSize)
	assert.ErrorIs(t, Validate(DeleteAll{NodePath: "a"}), ErrInvalidPath)
}
