package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// load merges .env, the config file, SQLQ_ environment variables
// and the flags of cmd, flags taking precedence.
func (o *RootOptions) load(cmd *cobra.Command) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}

	v := o.config
	v.SetEnvPrefix("SQLQ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".sqlq")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if v.GetBool("no-color") {
		color.NoColor = true
	}
	return nil
}

func (o *RootOptions) dialect() (dialect.Dialect, error) {
	name := o.config.GetString("dialect")
	d, ok := dialect.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q", name)
	}
	return d, nil
}

func (o *RootOptions) compilerOptions() []compiler.Option {
	var opts []compiler.Option
	if prefix := o.config.GetString("table-prefix"); prefix != "" {
		opts = append(opts, compiler.WithTablePrefix(prefix))
	}
	return opts
}

func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.config.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
