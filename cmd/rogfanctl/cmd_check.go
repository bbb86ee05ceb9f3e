package main

import (
	"fmt"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/cobra"

	"github.com/rog-community/rogfanctl/pkg/board"
	"github.com/rog-community/rogfanctl/pkg/safety"
	"github.com/rog-community/rogfanctl/pkg/util"
)

func init() {
	rootCmd.AddCommand(cmdCheck)
}

var cmdCheck = &cobra.Command{
	Use:     "check [curve]",
	Short:   "Validate a fan curve against the vendor safety envelope",
	Example: `rogfanctl check "30c:1%,49c:2%,59c:3%,69c:4%,79c:31%,89c:49%,99c:56%,109c:58%"`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, herr := resolveBoard()
		if herr != nil {
			return herr
		}

		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}

		unsafe := false
		for _, f := range board.Fans() {
			c, err := resolveCurve(arg, f)
			if err != nil {
				return err
			}

			limits, ok := b.FanLimits(f)
			if !ok {
				fmt.Printf("%s: not supported on %s\n", f, b.Name())
				continue
			}

			if v := safety.Check(c, limits); v != nil {
				unsafe = true
				style := criticalStyle()
				fmt.Printf("%s: %s\n", f, style.Render(v.Error()))
			} else {
				fmt.Printf("%s: %s\n", f, util.OkStyle().Render("safe"))
			}
		}

		if unsafe {
			return humane.New("the curve violates the vendor safety envelope",
				"this is advisory; `rogfanctl apply --no-warn` will still install it",
			)
		}
		return nil
	},
}
