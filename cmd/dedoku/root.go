package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:           "dedoku",
		Short:         "Sudoku deduction engine for rectangular-block grids",
		Long:          "dedoku fills every logically forced cell of an N×N sudoku grid (N = m·n,\nm×n rectangular regions) by pure constraint propagation. It never guesses;\ncells no deduction can force are left empty.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(lvl)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	cmd.AddCommand(newSolveCmd(), newServeCmd())
	return cmd
}
