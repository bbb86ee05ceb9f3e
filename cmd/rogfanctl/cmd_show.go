package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/cobra"

	"github.com/rog-community/rogfanctl/pkg/board"
	"github.com/rog-community/rogfanctl/pkg/curve"
	"github.com/rog-community/rogfanctl/pkg/safety"
	"github.com/rog-community/rogfanctl/pkg/util"
)

var showFan string

func init() {
	cmdShow.Flags().StringVar(&showFan, "fan", "cpu", "Fan to show the curve for (cpu or gpu).")

	rootCmd.AddCommand(cmdShow)
}

var cmdShow = &cobra.Command{
	Use:     "show [curve]",
	Short:   "Show the resolved fan curve as a temperature/speed table",
	Example: "rogfanctl show --fan gpu",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, ok := board.FanFromName(showFan)
		if !ok {
			return humane.New("unknown fan "+showFan,
				"valid fans are cpu and gpu",
			)
		}

		b, herr := resolveBoard()
		if herr != nil {
			return herr
		}

		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}

		c, err := resolveCurve(arg, f)
		if err != nil {
			return err
		}

		fmt.Println(util.PrintKeyValues(buildCurveKeyValues(b, f, c)))
		return nil
	},
}

func buildCurveKeyValues(b board.Board, f board.Fan, c curve.Curve) []util.KeyValuePair {
	values := []util.KeyValuePair{
		{
			Key:    "Board",
			Format: "%s",
			Value:  []any{b.Name()},
			Style:  func([]any) lipgloss.Style { return util.OkStyle() },
		},
		{
			Key:    "Fan",
			Format: "%s",
			Value:  []any{f.String()},
			Style:  func([]any) lipgloss.Style { return util.OkStyle() },
		},
	}

	limits, hasLimits := b.FanLimits(f)
	var violation *safety.Violation
	if hasLimits {
		violation = safety.Check(c, limits)
	}

	for idx, pt := range c.Points() {
		idx := idx
		values = append(values, util.KeyValuePair{
			Key:    fmt.Sprintf("%d°C", pt.Temperature),
			Format: "%d%%",
			Value:  []any{pt.Speed},
			Style: func([]any) lipgloss.Style {
				return pointStyle(idx, violation)
			},
		})
	}

	return values
}
