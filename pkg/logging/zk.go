package logging

import (
	"strings"

	"github.com/go-zookeeper/zk"
	"github.com/rs/zerolog"
)

// ZKLogger routes go-zookeeper's Printf output into a zerolog logger at debug level.
type ZKLogger struct {
	Logger zerolog.Logger
}

var _ zk.Logger = ZKLogger{}

func (l ZKLogger) Printf(format string, args ...interface{}) {
	l.Logger.Debug().Str("component", "go-zookeeper").Msgf(strings.TrimSuffix(format, "\n"), args...)
}
