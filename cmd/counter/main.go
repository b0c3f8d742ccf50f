package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChizhovVadim/CounterUci/internal/config"
	"github.com/ChizhovVadim/CounterUci/internal/evalbuilder"
	"github.com/ChizhovVadim/CounterUci/internal/logging"
	"github.com/ChizhovVadim/CounterUci/internal/tablebase"
	"github.com/ChizhovVadim/CounterUci/pkg/engine"
	"github.com/ChizhovVadim/CounterUci/pkg/uci"
)

/*
Counter Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name   = "Counter"
	author = "Vadim Chizhov"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var v = config.New()
	var configFile string
	var cmd = &cobra.Command{
		Use:   "counter [command...]",
		Short: "UCI chess engine",
		Long: "Counter speaks UCI on stdin/stdout. Arguments, if any, are executed\n" +
			"as a single command line and the program exits, e.g. `counter bench`.",
		Version:      versionName,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, configFile, args)
		},
	}
	// arguments after the first command word belong to the engine
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default ./counter.yaml)")
	cmd.Flags().String(config.KeyLogLevel, "info", "log level: trace, debug, info, warn, error")
	cmd.Flags().String(config.KeyEval, "", "evaluation source: "+strings.Join(evalbuilder.Names(), ", "))
	_ = v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup(config.KeyLogLevel))
	_ = v.BindPFlag(config.KeyEval, cmd.Flags().Lookup(config.KeyEval))
	return cmd
}

func run(ctx context.Context, v *viper.Viper, configFile string, args []string) error {
	var cfg, err = config.Load(v, configFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	if err := evalbuilder.Validate(cfg.Eval); err != nil {
		return err
	}
	var evalSource = cfg.Eval
	if evalSource == "" {
		evalSource = evalbuilder.Pesto
	}

	logger.Info().
		Str("name", name).
		Str("version", versionName).
		Str("buildDate", buildDate).
		Str("gitRevision", gitRevision).
		Str("runtime", runtime.Version()).
		Str("goarch", runtime.GOARCH).
		Str("goos", runtime.GOOS).
		Int("numCPU", runtime.NumCPU()).
		Str("eval", evalSource).
		Msg("starting")

	var c = &collaborators{
		engine:  engine.NewEngine(evalbuilder.Get(evalSource), logger),
		tables:  tablebase.New(logger),
		options: uci.NewOptionRegistry(),
		logger:  logger,
	}
	c.registerOptions(evalSource)
	c.protocol = uci.New(uci.Config{
		Name:    name,
		Author:  author,
		Version: versionName,
		Engine:  c.engine,
		Options: c.options,
		Logger:  logger,
	})
	c.applyPresets(cfg.Presets())

	if len(args) > 0 {
		c.protocol.RunOnce(strings.Join(args, " "))
		return nil
	}

	input, err := uci.NewLineReader()
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer input.Close()
	return c.protocol.Run(ctx, input)
}
