package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rog-community/rogfanctl/pkg/board"
	"github.com/rog-community/rogfanctl/pkg/config"
	"github.com/rog-community/rogfanctl/pkg/curve"
	"github.com/rog-community/rogfanctl/pkg/log"
)

var (
	cfgFile   string
	boardName string
	verbose   bool
	timeout   time.Duration

	cfg config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to the configuration file (default: "+defaultConfigPath()+").")
	rootCmd.PersistentFlags().StringVar(&boardName, "board", "", "Board name, e.g. GA401IV (default: auto-detect from DMI).")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Timeout for controller calls.")
}

var rootCmd = &cobra.Command{
	Use:   "rogfanctl",
	Short: "rogfanctl installs fan-speed curves on the embedded controller of ASUS ROG laptops via acpi_call",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		origCtx := cmd.Context()

		ctx, cancelCtx := context.WithTimeout(origCtx, timeout)

		// setup signal handler channels
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
		go func() {
			select {
			// Wait for context cancel
			case <-ctx.Done():

			// Wait for signal
			case sig := <-sigs:
				switch sig {
				case syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT:
					// On terminate signal, cancel context causing the program to terminate
					cancelCtx()

				default:
					log.FromContext(ctx).Warn("Received unknown signal", zap.String("signal", sig.String()))
				}
			}
		}()

		logger, err := newLogger(verbose)
		if err != nil {
			return err
		}
		cmd.SetContext(log.IntoContext(ctx, logger))

		return loadConfig()
	},
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if !verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return zapCfg.Build()
}

func defaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "rogfanctl", "config.yaml")
}

func loadConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if path := defaultConfigPath(); path != "" {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("ROGFANCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply.
		if _, ok := err.(*os.PathError); !ok {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return humane.Wrap(err, "failed to read the configuration file",
					"check the yaml syntax of "+viper.ConfigFileUsed(),
				)
			}
		}
		return nil
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return humane.Wrap(err, "failed to parse the configuration file",
			"check the structure of "+viper.ConfigFileUsed(),
		)
	}

	return nil
}

// resolveBoard picks the board from the --board flag, the config file or
// DMI auto-detection, in that order.
func resolveBoard() (board.Board, humane.Error) {
	name := boardName
	if name == "" {
		name = cfg.Board
	}

	if name != "" {
		b, ok := board.FromName(name)
		if !ok {
			return 0, humane.New("unknown board "+name,
				"only the GA401IV (ROG Zephyrus G14) is currently supported",
			)
		}
		return b, nil
	}

	b, ok := board.Detect(afero.NewOsFs())
	if !ok {
		return 0, humane.New("failed to auto-detect a supported board",
			"pass --board GA401IV if you know your board model",
			"auto-detection reads "+board.DmiBoardNamePath,
		)
	}
	return b, nil
}

// resolveCurve picks the curve from the positional argument, the per-fan
// config entry or the vendor default, in that order.
func resolveCurve(arg string, f board.Fan) (curve.Curve, error) {
	raw := arg
	if raw == "" {
		raw = cfg.CurveFor(f)
	}
	if raw == "" {
		return curve.New(), nil
	}
	return curve.Parse(raw)
}
