package cmd

import (
	"github.com/mikekulinski/zkcli/pkg/command"
	"github.com/spf13/cobra"
)

// newWriteCmd builds create and set, which take the same flags.
func newWriteCmd(a *app, kind command.Kind, short string) *cobra.Command {
	var (
		path       string
		value      string
		randomSize int
	)
	c := &cobra.Command{
		Use:   string(kind),
		Short: short,
		Long: short + `.

The data is --value unless --random-size is greater than zero or --value is
missing; then it is that many random lowercase letters and digits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := command.Write{NodePath: path, RandomSize: randomSize}
			if cmd.Flags().Changed("value") {
				w.Value = &value
			}
			if kind == command.KindCreate {
				return a.run(cmd, command.Create{Write: w})
			}
			return a.run(cmd, command.Set{Write: w})
		},
	}
	c.Flags().StringVar(&path, "path", "", "absolute node path")
	c.Flags().StringVar(&value, "value", "", "UTF-8 data to store")
	c.Flags().IntVar(&randomSize, "random-size", 0, "store this many random bytes instead of --value")
	_ = c.MarkFlagRequired("path")
	return c
}

// newPathCmd builds the commands that only take a path.
func newPathCmd(a *app, kind command.Kind, short string) *cobra.Command {
	var path string
	c := &cobra.Command{
		Use:   string(kind),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var op command.Command
			switch kind {
			case command.KindGet:
				op = command.Get{NodePath: path}
			case command.KindExists:
				op = command.Exists{NodePath: path}
			case command.KindDelete:
				op = command.Delete{NodePath: path}
			default:
				op = command.DeleteAll{NodePath: path}
			}
			return a.run(cmd, op)
		},
	}
	c.Flags().StringVar(&path, "path", "", "absolute node path")
	_ = c.MarkFlagRequired("path")
	return c
}
