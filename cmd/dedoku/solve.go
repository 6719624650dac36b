package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/dedoku/internal/board"
	"svw.info/dedoku/internal/deduce"
	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/geometry"
	"svw.info/dedoku/internal/parse"
)

func newSolveCmd() *cobra.Command {
	var (
		blockRows int
		blockCols int
		trace     bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Fill every logically forced cell of a puzzle",
		Long:  "Reads a puzzle from a file or stdin ('.', '_' or 0 for empty cells) and\napplies hidden-single deduction to a fixpoint. The block shape is inferred\nfrom the grid size unless --block-rows/--block-cols are given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			cells, err := parse.FromString(string(data))
			if err != nil {
				return err
			}
			var g *board.Grid
			if blockRows > 0 || blockCols > 0 {
				if blockRows == 0 {
					blockRows = blockCols
				}
				if blockCols == 0 {
					blockCols = blockRows
				}
				g, err = board.FromMatrixShape(cells, geometry.Shape{BlockRows: blockRows, BlockCols: blockCols})
			} else {
				g, err = board.FromMatrix(cells)
			}
			if err != nil {
				return err
			}

			s := deduce.NewSolver()
			if trace {
				s.Trace = func(p domain.Placement) {
					fmt.Fprintf(cmd.OutOrStdout(), "(%d,%d) = %d\n", p.Cell.Row, p.Cell.Col, p.Value)
				}
			}
			st, err := s.Solve(cmd.Context(), g)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), g.String())
			logrus.WithFields(logrus.Fields{
				"rounds":      st.Rounds,
				"assignments": st.Assignments,
				"empty":       g.EmptyCount(),
				"dur":         st.Duration.Round(time.Microsecond),
			}).Info("converged")
			return nil
		},
	}
	cmd.Flags().IntVar(&blockRows, "block-rows", 0, "rows per block (inferred when omitted)")
	cmd.Flags().IntVar(&blockCols, "block-cols", 0, "columns per block (defaults to --block-rows)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print each forced placement as it is applied")
	return cmd
}
