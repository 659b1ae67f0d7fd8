package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys. Each may come from a flag, a LAMBDA_* environment
// variable, or the config file, in that order of precedence.
const (
	keyConfig        = "config"
	keyMaxDepth      = "max-depth"
	keyAllowTrailing = "allow-trailing"
	keyNoColor       = "no-color"
	keyOutput        = "output"
	keyLogLevel      = "log-level"
)

// errReported signals that the failure was already printed.
var errReported = errors.New("error already reported")

// app carries the resolved configuration for one invocation.
type app struct {
	v        *viper.Viper
	useColor bool
	log      zerolog.Logger
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix("LAMBDA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyMaxDepth, 500)
	v.SetDefault(keyOutput, "text")
	v.SetDefault(keyLogLevel, "warn")
	return &app{v: v, log: zerolog.Nop()}
}

// load reads the config file and sets up color and logging. It runs before
// every command.
func (a *app) load(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := a.readConfig(); err != nil {
		return err
	}

	a.useColor = !a.v.GetBool(keyNoColor) && isTerminal(cmd.OutOrStdout())
	color.NoColor = !a.useColor

	level, err := zerolog.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	// Lowered for this run only; execute restores it.
	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{
		Out:     cmd.ErrOrStderr(),
		NoColor: !isTerminal(cmd.ErrOrStderr()),
	}).Level(level).With().Timestamp().Logger()
	a.log.Debug().Str("config", a.v.ConfigFileUsed()).Msg("configuration loaded")
	return nil
}

func (a *app) readConfig() error {
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		return a.v.ReadInConfig()
	}
	home, err := homedir.Dir()
	if err != nil {
		// No home directory means no default config file.
		return nil
	}
	a.v.AddConfigPath(home)
	a.v.SetConfigName(".lambda")
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
