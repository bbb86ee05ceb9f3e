package main

import (
	"fmt"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/cobra"

	"github.com/rog-community/rogfanctl/pkg/board"
	"github.com/rog-community/rogfanctl/pkg/ec"
)

var encodeFan string

func init() {
	cmdEncode.Flags().StringVar(&encodeFan, "fan", "cpu", "Fan to encode the command for (cpu or gpu).")

	rootCmd.AddCommand(cmdEncode)
}

var cmdEncode = &cobra.Command{
	Use:     "encode [curve]",
	Short:   "Print the exact acpi_call command for a curve without touching hardware",
	Example: `rogfanctl encode --fan cpu "30c:0%,40c:5%,50c:10%,60c:20%,70c:35%,80c:55%,90c:65%,100c:65%"`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, ok := board.FanFromName(encodeFan)
		if !ok {
			return humane.New("unknown fan "+encodeFan,
				"valid fans are cpu and gpu",
			)
		}

		b, herr := resolveBoard()
		if herr != nil {
			return herr
		}

		addr, ok := b.FanAddress(f)
		if !ok {
			return humane.New("fan "+f.String()+" is not supported on board "+b.Name(),
				"check the supported fans for your board with `rogfanctl show`",
			)
		}

		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}

		c, err := resolveCurve(arg, f)
		if err != nil {
			return err
		}

		fmt.Println(ec.Command(c, b.MethodPath(), addr))
		return nil
	},
}
