package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mikekulinski/zkcli/pkg/client"
	"github.com/mikekulinski/zkcli/pkg/command"
	"github.com/mikekulinski/zkcli/pkg/config"
	"github.com/mikekulinski/zkcli/pkg/executor"
	"github.com/mikekulinski/zkcli/pkg/logging"
	"github.com/mikekulinski/zkcli/pkg/result"
	"github.com/mikekulinski/zkcli/pkg/zookeeper"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errSubcommandRequired = errors.New("a subcommand is required")

// connectorFactory turns the resolved settings into the ConnectFunc used by the executor.
type connectorFactory func(address string, cfg client.Config, logger zerolog.Logger) (executor.ConnectFunc, error)

// app holds the global flags and the process wiring shared by every subcommand.
type app struct {
	address    string
	configPath string
	logLevel   string
	opTimeout  time.Duration

	out     io.Writer
	connect connectorFactory
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{out: os.Stdout, connect: zkConnector})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "zkcli",
		Short: "Non-interactive ZooKeeper client",
		Long: `zkcli runs exactly one operation against a ZooKeeper ensemble and prints
the outcome as a single JSON object on stdout. Logs go to stderr.

Examples:
  zkcli --address 127.0.0.1:2181 create --path /app/config --value '{"debug":true}'
  zkcli --address 127.0.0.1:2181 set --path /app/blob --random-size 4096
  zkcli --address 127.0.0.1:2181 get --path /app/config
  zkcli --address zk1:2181,zk2:2181 deleteall --path /app`,
		Version: "0.0.1",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return errSubcommandRequired
		},
	}

	root.PersistentFlags().StringVar(&a.address, "address", "", "ZooKeeper address, host:port or a comma-separated list")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "optional TOML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level on stderr (trace|debug|info|warn|error|off)")
	root.PersistentFlags().DurationVar(&a.opTimeout, "op-timeout", 0, "deadline for the service call, 0 for none")
	_ = root.MarkPersistentFlagRequired("address")

	root.AddCommand(
		newWriteCmd(a, command.KindCreate, "Create a node, and any missing parents, with the given data"),
		newWriteCmd(a, command.KindSet, "Overwrite the data of a node, creating it if needed"),
		newPathCmd(a, command.KindGet, "Print the data and stat of a node"),
		newPathCmd(a, command.KindExists, "Print the stat of a node if it exists"),
		newPathCmd(a, command.KindDelete, "Delete a node that has no children"),
		newPathCmd(a, command.KindDeleteAll, "Delete a node and its whole subtree"),
	)
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("op-timeout") {
		cfg.Executor.OperationTimeout = a.opTimeout
	}
	if cmd.Flags().Changed("log-level") {
		lvl, ok := logging.ParseLevel(a.logLevel)
		if !ok {
			return config.Config{}, fmt.Errorf("unknown log level %q", a.logLevel)
		}
		cfg.Log.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// run executes c and prints its result. Only argument errors and connection
// exhaustion come back as errors; a failed operation is still a printed result.
func (a *app) run(cmd *cobra.Command, c command.Command) error {
	if err := command.Validate(c); err != nil {
		return err
	}
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	// Past this point, problems are not about usage.
	cmd.SilenceUsage = true

	logger := logging.New(cfg.Log)
	connect, err := a.connect(a.address, cfg.Client, logger)
	if err != nil {
		return err
	}

	e := executor.New(connect, cfg.Executor, executor.WithLogger(logger))
	res, err := e.Execute(cmd.Context(), c)
	if err != nil {
		return err
	}
	return result.Write(a.out, res)
}

func zkConnector(address string, cfg client.Config, logger zerolog.Logger) (executor.ConnectFunc, error) {
	connector, err := client.NewConnector(address, cfg, client.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) (zookeeper.Session, error) {
		c, err := connector.Connect(ctx)
		if err != nil {
			return nil, err
		}
		return c, nil
	}, nil
}
