package executor

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mikekulinski/zkcli/pkg/command"
	"github.com/mikekulinski/zkcli/pkg/payload"
	"github.com/mikekulinski/zkcli/pkg/result"
	"github.com/mikekulinski/zkcli/pkg/zookeeper"
	"github.com/rs/zerolog"
)

// ConnectFunc opens the session used for one command.
type ConnectFunc func(ctx context.Context) (zookeeper.Session, error)

type Config struct {
	// OperationTimeout bounds the service calls of one command. Zero means no deadline.
	OperationTimeout time.Duration
}

func (c Config) Validate() error {
	if c.OperationTimeout < 0 {
		return fmt.Errorf("operation timeout must not be negative, got %s", c.OperationTimeout)
	}
	return nil
}

// Executor runs one command per call: connect, act, translate the outcome, close.
type Executor struct {
	connect  ConnectFunc
	cfg      Config
	logger   zerolog.Logger
	generate func(size int) []byte
}

type Option func(*Executor)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithPayloadGenerator replaces the generator used for random payloads.
func WithPayloadGenerator(generate func(size int) []byte) Option {
	return func(e *Executor) {
		e.generate = generate
	}
}

func New(connect ConnectFunc, cfg Config, opts ...Option) *Executor {
	e := &Executor{
		connect:  connect,
		cfg:      cfg,
		logger:   zerolog.Nop(),
		generate: payload.Generate,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs cmd and returns its result. The error is non-nil only when no
// session could be opened; every failure after that is reported in the result.
func (e *Executor) Execute(ctx context.Context, cmd command.Command) (result.OpResult, error) {
	logger := e.logger.With().
		Str("run_id", uuid.NewString()).
		Str("op", string(cmd.Kind())).
		Str("path", cmd.Path()).
		Logger()

	sess, err := e.connect(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("unable to open a session")
		return result.OpResult{}, err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Debug().Err(err).Msg("error closing the session")
		}
	}()

	if e.cfg.OperationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.OperationTimeout)
		defer cancel()
	}

	var res result.OpResult
	switch c := cmd.(type) {
	case command.Create:
		res = e.write(ctx, sess, c.Write)
	case command.Set:
		res = e.write(ctx, sess, c.Write)
	case command.Get:
		res = e.get(ctx, logger, sess, c)
	case command.Exists:
		res = e.exists(ctx, sess, c)
	case command.Delete:
		res = e.delete(ctx, sess, c)
	case command.DeleteAll:
		res = e.deleteAll(ctx, sess, c)
	default:
		res = result.Failure(fmt.Errorf("unsupported command %T", cmd))
	}

	logger.Debug().Str("code", string(res.Code)).Msg("operation finished")
	return res, nil
}

// write backs both Create and Set: the path is ensured, then overwritten with no
// version check.
func (e *Executor) write(ctx context.Context, sess zookeeper.Session, w command.Write) result.OpResult {
	data := w.Data(e.generate)
	r, err := call(ctx, func() (result.OpResult, error) {
		if err := sess.EnsurePath(w.NodePath); err != nil {
			return result.OpResult{}, err
		}
		stat, err := sess.Set(w.NodePath, data, zookeeper.AnyVersion)
		if err != nil {
			return result.OpResult{}, err
		}
		return result.Succeeded(stat), nil
	})
	if err != nil {
		return result.Failure(err)
	}
	return r
}

// get leaves the error field empty on failure. Data that is not valid UTF-8 is
// left out of the result without failing it.
func (e *Executor) get(ctx context.Context, logger zerolog.Logger, sess zookeeper.Session, c command.Get) result.OpResult {
	r, err := call(ctx, func() (result.OpResult, error) {
		data, stat, err := sess.Get(c.NodePath)
		if err != nil {
			return result.OpResult{}, err
		}
		r := result.Succeeded(stat)
		if utf8.Valid(data) {
			value := string(data)
			r.Value = &value
		} else {
			logger.Debug().Int("bytes", len(data)).Msg("data is not valid utf-8, value omitted")
		}
		return r, nil
	})
	if err != nil {
		logger.Debug().Err(err).Msg("get failed")
		return result.Failure(nil)
	}
	return r
}

// exists succeeds without a stat when the node is missing.
func (e *Executor) exists(ctx context.Context, sess zookeeper.Session, c command.Exists) result.OpResult {
	r, err := call(ctx, func() (result.OpResult, error) {
		ok, stat, err := sess.Exists(c.NodePath)
		if err != nil {
			return result.OpResult{}, err
		}
		if !ok {
			return result.OpResult{Code: result.Success}, nil
		}
		return result.Succeeded(stat), nil
	})
	if err != nil {
		return result.Failure(err)
	}
	return r
}

func (e *Executor) delete(ctx context.Context, sess zookeeper.Session, c command.Delete) result.OpResult {
	return e.remove(ctx, func() error {
		return sess.Delete(c.NodePath, zookeeper.AnyVersion)
	})
}

func (e *Executor) deleteAll(ctx context.Context, sess zookeeper.Session, c command.DeleteAll) result.OpResult {
	return e.remove(ctx, func() error {
		return sess.DeleteAll(c.NodePath)
	})
}

func (e *Executor) remove(ctx context.Context, fn func() error) result.OpResult {
	_, err := call(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	if err != nil {
		return result.Failure(err)
	}
	return result.OpResult{Code: result.Success}
}

// call runs fn and waits for it or for ctx, whichever comes first. go-zookeeper
// calls take no context, so on expiry fn keeps running until the session is closed.
func call[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	if ctx.Done() == nil {
		return fn()
	}
	done := make(chan outcome[T], 1)
	go func() {
		v, err := fn()
		done <- outcome[T]{v: v, err: err}
	}()
	select {
	case o := <-done:
		return o.v, o.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

type outcome[T any] struct {
	v   T
	err error
}
