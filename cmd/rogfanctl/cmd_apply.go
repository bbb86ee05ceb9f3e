package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rog-community/rogfanctl/pkg/board"
	"github.com/rog-community/rogfanctl/pkg/ec"
	"github.com/rog-community/rogfanctl/pkg/log"
	"github.com/rog-community/rogfanctl/pkg/safety"
)

var (
	applyCpu    bool
	applyGpu    bool
	applyNoWarn bool
)

func init() {
	cmdApply.Flags().BoolVar(&applyCpu, "cpu", false, "Apply the curve to the CPU fan.")
	cmdApply.Flags().BoolVar(&applyGpu, "gpu", false, "Apply the curve to the GPU fan.")
	cmdApply.Flags().BoolVar(&applyNoWarn, "no-warn", false, "Suppress the safety warning for risky curves.")

	rootCmd.AddCommand(cmdApply)
}

var cmdApply = &cobra.Command{
	Use:     "apply [curve]",
	Short:   "Install a fan curve on the embedded controller",
	Example: `rogfanctl apply --cpu "30c:0%,40c:5%,50c:10%,60c:20%,70c:35%,80c:55%,90c:65%,100c:65%"`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := log.FromContext(ctx)

		b, herr := resolveBoard()
		if herr != nil {
			return herr
		}

		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}

		fans := selectedFans(applyCpu, applyGpu)
		controller := ec.NewController(ec.AcpiCall{})

		// The safety check is advisory; warn once and proceed.
		warned := applyNoWarn
		for _, f := range fans {
			c, err := resolveCurve(arg, f)
			if err != nil {
				return err
			}

			if limits, ok := b.FanLimits(f); ok && !warned {
				if v := safety.Check(c, limits); v != nil {
					warned = true
					logger.Warn("This fan curve would not be allowed in Armoury Crate and may be unsafe",
						zap.String("fan", f.String()),
						zap.String("violation", v.Error()),
					)
				}
			}

			if herr := controller.Apply(ctx, c, b, f); herr != nil {
				return herr
			}

			logger.Info("Fan curve applied",
				zap.String("board", b.Name()),
				zap.String("fan", f.String()),
				zap.String("curve", c.ConfigString()),
			)
		}

		return nil
	},
}

// selectedFans maps the --cpu/--gpu flags to fans; neither flag means
// both fans.
func selectedFans(cpu, gpu bool) []board.Fan {
	if !cpu && !gpu {
		return board.Fans()
	}

	var fans []board.Fan
	if cpu {
		fans = append(fans, board.FanCpu)
	}
	if gpu {
		fans = append(fans, board.FanGpu)
	}
	return fans
}
