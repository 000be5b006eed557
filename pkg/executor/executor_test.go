package executor

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/mikekulinski/zkcli/pkg/client"
	"github.com/mikekulinski/zkcli/pkg/command"
	"github.com/mikekulinski/zkcli/pkg/result"
	"github.com/mikekulinski/zkcli/pkg/znode"
	"github.com/mikekulinski/zkcli/pkg/zookeeper"
	mock_zookeeper "github.com/mikekulinski/zkcli/pkg/zookeeper/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr(s string) *string {
	return &s
}

// memoryExecutor runs every command against the same in-memory tree. Each command
// still gets its own session and closes it.
func memoryExecutor(t *testing.T, db *znode.DB, opts ...Option) *Executor {
	t.Helper()
	connect := func(context.Context) (zookeeper.Session, error) {
		return client.NewClient(sharedConn{db}), nil
	}
	return New(connect, Config{}, opts...)
}

// sharedConn keeps the tree usable after a session closes it.
type sharedConn struct {
	*znode.DB
}

func (sharedConn) Close() {}

func run(t *testing.T, e *Executor, cmd command.Command) result.OpResult {
	t.Helper()
	res, err := e.Execute(context.Background(), cmd)
	require.NoError(t, err)
	return res
}

func TestExecutor_CreateThenGet(t *testing.T) {
	db := znode.NewDB()
	e := memoryExecutor(t, db)

	res := run(t, e, command.Create{Write: command.Write{NodePath: "/zoo/giraffe", Value: ptr("More secrets")}})
	require.Equal(t, result.Success, res.Code)
	require.NotNil(t, res.ZnodeStat)
	assert.Equal(t, int32(len("More secrets")), res.ZnodeStat.DataLength)
	assert.Nil(t, res.Value)
	assert.Nil(t, res.Error)

	// The ancestor was created on the way.
	exists, _, err := db.Exists("/zoo")
	require.NoError(t, err)
	assert.True(t, exists)

	res = run(t, e, command.Get{NodePath: "/zoo/giraffe"})
	require.Equal(t, result.Success, res.Code)
	require.NotNil(t, res.Value)
	assert.Equal(t, "More secrets", *res.Value)
	assert.NotNil(t, res.ZnodeStat)
}

func TestExecutor_SetThenGet(t *testing.T) {
	e := memoryExecutor(t, znode.NewDB())

	first := run(t, e, command.Set{Write: command.Write{NodePath: "/a", Value: ptr("one")}})
	require.Equal(t, result.Success, first.Code)
	second := run(t, e, command.Set{Write: command.Write{NodePath: "/a", Value: ptr("двa")}})
	require.Equal(t, result.Success, second.Code)
	assert.Equal(t, first.ZnodeStat.Version+1, second.ZnodeStat.Version)

	res := run(t, e, command.Get{NodePath: "/a"})
	require.NotNil(t, res.Value)
	assert.Equal(t, "двa", *res.Value)
}

func TestExecutor_CreateOverwritesExisting(t *testing.T) {
	db := znode.NewDB()
	e := memoryExecutor(t, db)

	run(t, e, command.Create{Write: command.Write{NodePath: "/a", Value: ptr("old")}})
	res := run(t, e, command.Create{Write: command.Write{NodePath: "/a", Value: ptr("new")}})
	require.Equal(t, result.Success, res.Code)

	data, _, err := db.Get("/a")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

// TestExecutor_RandomSizeOverridesValue pins the current precedence: a positive
// random size wins over an explicit value.
func TestExecutor_RandomSizeOverridesValue(t *testing.T) {
	tests := []struct {
		name     string
		write    command.Write
		expected []byte
	}{
		{
			name:     "value without random size",
			write:    command.Write{NodePath: "/p", Value: ptr("exact")},
			expected: []byte("exact"),
		},
		{
			name:     "random size beats value",
			write:    command.Write{NodePath: "/p", Value: ptr("exact"), RandomSize: 8},
			expected: []byte("xxxxxxxx"),
		},
		{
			name:     "no value, no size",
			write:    command.Write{NodePath: "/p"},
			expected: []byte{},
		},
		{
			name:     "no value, random size",
			write:    command.Write{NodePath: "/p", RandomSize: 3},
			expected: []byte("xxx"),
		},
	}
	for _, test := range tests {
		for _, cmd := range []command.Command{command.Create{Write: test.write}, command.Set{Write: test.write}} {
			t.Run(test.name+"/"+string(cmd.Kind()), func(t *testing.T) {
				db := znode.NewDB()
				e := memoryExecutor(t, db, WithPayloadGenerator(func(size int) []byte {
					return bytes.Repeat([]byte{'x'}, size)
				}))

				res := run(t, e, cmd)
				require.Equal(t, result.Success, res.Code)
				assert.Equal(t, int32(len(test.expected)), res.ZnodeStat.DataLength)

				data, _, err := db.Get("/p")
				require.NoError(t, err)
				assert.Equal(t, len(test.expected), len(data))
				if len(test.expected) > 0 {
					assert.Equal(t, test.expected, data)
				}
			})
		}
	}
}

func TestExecutor_RandomPayloadLength(t *testing.T) {
	db := znode.NewDB()
	e := memoryExecutor(t, db)

	res := run(t, e, command.Create{Write: command.Write{NodePath: "/r", Value: ptr("ignored"), RandomSize: 1024}})
	require.Equal(t, result.Success, res.Code)
	data, _, err := db.Get("/r")
	require.NoError(t, err)
	assert.Len(t, data, 1024)
}

func TestExecutor_GetInvalidUTF8(t *testing.T) {
	db := znode.NewDB()
	_, err := db.Create("/bin", []byte{0xff, 0xfe, 0x00}, zookeeper.PersistentNode, zookeeper.OpenACL)
	require.NoError(t, err)

	res := run(t, memoryExecutor(t, db), command.Get{NodePath: "/bin"})
	assert.Equal(t, result.Success, res.Code)
	assert.Nil(t, res.Value)
	require.NotNil(t, res.ZnodeStat)
	assert.Equal(t, int32(3), res.ZnodeStat.DataLength)
}

func TestExecutor_GetMissing(t *testing.T) {
	res := run(t, memoryExecutor(t, znode.NewDB()), command.Get{NodePath: "/missing"})
	assert.Equal(t, result.Failed, res.Code)
	assert.Nil(t, res.Error)
	assert.Nil(t, res.ZnodeStat)
	assert.Nil(t, res.Value)
}

func TestExecutor_Exists(t *testing.T) {
	db := znode.NewDB()
	e := memoryExecutor(t, db)

	res := run(t, e, command.Exists{NodePath: "/missing"})
	assert.Equal(t, result.Success, res.Code)
	assert.Nil(t, res.ZnodeStat)

	run(t, e, command.Create{Write: command.Write{NodePath: "/here", Value: ptr("x")}})
	res = run(t, e, command.Exists{NodePath: "/here"})
	assert.Equal(t, result.Success, res.Code)
	require.NotNil(t, res.ZnodeStat)
	assert.Equal(t, int32(1), res.ZnodeStat.DataLength)
}

func TestExecutor_DeleteVersusDeleteAll(t *testing.T) {
	db := znode.NewDB()
	e := memoryExecutor(t, db)
	run(t, e, command.Create{Write: command.Write{NodePath: "/tree/a/b", Value: ptr("leaf")}})
	run(t, e, command.Create{Write: command.Write{NodePath: "/tree/c", Value: ptr("leaf")}})

	res := run(t, e, command.Delete{NodePath: "/tree"})
	assert.Equal(t, result.Failed, res.Code)
	require.NotNil(t, res.Error)
	assert.Equal(t, zk.ErrNotEmpty.Error(), *res.Error)

	res = run(t, e, command.DeleteAll{NodePath: "/tree"})
	assert.Equal(t, result.Success, res.Code)
	assert.Nil(t, res.Error)

	res = run(t, e, command.Exists{NodePath: "/tree"})
	assert.Nil(t, res.ZnodeStat)
}

func TestExecutor_DeleteLeafAndMissing(t *testing.T) {
	db := znode.NewDB()
	e := memoryExecutor(t, db)
	run(t, e, command.Create{Write: command.Write{NodePath: "/leaf"}})

	res := run(t, e, command.Delete{NodePath: "/leaf"})
	assert.Equal(t, result.Success, res.Code)
	assert.Nil(t, res.ZnodeStat)

	res = run(t, e, command.Delete{NodePath: "/leaf"})
	assert.Equal(t, result.Failed, res.Code)
	require.NotNil(t, res.Error)
	assert.Equal(t, zk.ErrNoNode.Error(), *res.Error)

	res = run(t, e, command.DeleteAll{NodePath: "/leaf"})
	assert.Equal(t, result.Failed, res.Code)
}

func TestExecutor_ConnectFailure(t *testing.T) {
	errExhausted := errors.New("connect attempts exhausted")
	e := New(func(context.Context) (zookeeper.Session, error) {
		return nil, errExhausted
	}, Config{})

	_, err := e.Execute(context.Background(), command.Get{NodePath: "/a"})
	assert.ErrorIs(t, err, errExhausted)
}

func mockExecutor(t *testing.T, cfg Config) (*Executor, *mock_zookeeper.MockSession) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sess := mock_zookeeper.NewMockSession(ctrl)
	e := New(func(context.Context) (zookeeper.Session, error) {
		return sess, nil
	}, cfg)
	return e, sess
}

func TestExecutor_CloseErrorIgnored(t *testing.T) {
	e, sess := mockExecutor(t, Config{})
	stat := &zk.Stat{Version: 3}
	sess.EXPECT().EnsurePath("/a").Return(nil)
	sess.EXPECT().Set("/a", []byte("v"), zookeeper.AnyVersion).Return(stat, nil)
	sess.EXPECT().Close().Return(errors.New("close failed"))

	res := run(t, e, command.Set{Write: command.Write{NodePath: "/a", Value: ptr("v")}})
	assert.Equal(t, result.Succeeded(stat), res)
}

func TestExecutor_ServiceErrors(t *testing.T) {
	errLost := zk.ErrConnectionClosed
	tests := []struct {
		name     string
		cmd      command.Command
		expect   func(s *mock_zookeeper.MockSession)
		errorMsg *string
	}{
		{
			name: "create, ensure path fails",
			cmd:  command.Create{Write: command.Write{NodePath: "/a/b", Value: ptr("v")}},
			expect: func(s *mock_zookeeper.MockSession) {
				s.EXPECT().EnsurePath("/a/b").Return(zk.ErrNoAuth)
			},
			errorMsg: ptr(zk.ErrNoAuth.Error()),
		},
		{
			name: "set fails",
			cmd:  command.Set{Write: command.Write{NodePath: "/a", Value: ptr("v")}},
			expect: func(s *mock_zookeeper.MockSession) {
				s.EXPECT().EnsurePath("/a").Return(nil)
				s.EXPECT().Set("/a", []byte("v"), zookeeper.AnyVersion).Return(nil, errLost)
			},
			errorMsg: ptr(errLost.Error()),
		},
		{
			name: "get fails without error text",
			cmd:  command.Get{NodePath: "/a"},
			expect: func(s *mock_zookeeper.MockSession) {
				s.EXPECT().Get("/a").Return(nil, nil, errLost)
			},
		},
		{
			name: "exists fails",
			cmd:  command.Exists{NodePath: "/a"},
			expect: func(s *mock_zookeeper.MockSession) {
				s.EXPECT().Exists("/a").Return(false, nil, errLost)
			},
			errorMsg: ptr(errLost.Error()),
		},
		{
			name: "delete fails",
			cmd:  command.Delete{NodePath: "/a"},
			expect: func(s *mock_zookeeper.MockSession) {
				s.EXPECT().Delete("/a", zookeeper.AnyVersion).Return(errLost)
			},
			errorMsg: ptr(errLost.Error()),
		},
		{
			name: "deleteall fails",
			cmd:  command.DeleteAll{NodePath: "/a"},
			expect: func(s *mock_zookeeper.MockSession) {
				s.EXPECT().DeleteAll("/a").Return(errLost)
			},
			errorMsg: ptr(errLost.Error()),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e, sess := mockExecutor(t, Config{})
			test.expect(sess)
			sess.EXPECT().Close().Return(nil)

			res := run(t, e, test.cmd)
			assert.Equal(t, result.Failed, res.Code)
			assert.Nil(t, res.ZnodeStat)
			assert.Nil(t, res.Value)
			assert.Equal(t, test.errorMsg, res.Error)
		})
	}
}

func TestExecutor_OperationTimeout(t *testing.T) {
	e, sess := mockExecutor(t, Config{OperationTimeout: 10 * time.Millisecond})
	release := make(chan struct{})
	sess.EXPECT().Exists("/slow").DoAndReturn(func(string) (bool, *zk.Stat, error) {
		<-release
		return true, &zk.Stat{}, nil
	})
	sess.EXPECT().Close().DoAndReturn(func() error {
		close(release)
		return nil
	})

	res := run(t, e, command.Exists{NodePath: "/slow"})
	assert.Equal(t, result.Failed, res.Code)
	require.NotNil(t, res.Error)
	assert.Equal(t, context.DeadlineExceeded.Error(), *res.Error)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{OperationTimeout: time.Second}.Validate())
	assert.Error(t, Config{OperationTimeout: -time.Second}.Validate())
}
