/*
 *
 * hisview - a legacy .drr/.his histogram catalog viewer
 * Copyright (C) 2024 hisview contributors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package cmd

import (
	stderrors "errors"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/drr-tools/hisview/drr"
	"github.com/drr-tools/hisview/engine"
	"github.com/drr-tools/hisview/errext"
	"github.com/drr-tools/hisview/errext/exitcodes"
)

var cfgFile string

// RootCmd is the base command, a single verb that reads a catalog and emits
// the requested view of one histogram (or a list of them) to stdout.
var RootCmd = &cobra.Command{
	Use:           "hisview <base>",
	Short:         "view histograms from a legacy .drr/.his catalog",
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runView,
}

func init() {
	RootCmd.Flags().AddFlagSet(optionFlagSet())
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default $HOME/.hisview.yaml)")
	cobra.OnInitialize(initConfig)
}

// initConfig loads the optional site-wide defaults file. Every option also
// works from flags alone, so a missing or unreadable file is not fatal — it
// only gives up on supplying defaults.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".hisview")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME")
	}
	viper.SetEnvPrefix("HISVIEW")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			log.WithError(err).Warn("couldn't read hisview config file")
		}
	}
}

func runView(cmd *cobra.Command, args []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	logger := setupLogger(verbose)

	cfg, err := getOptions(cmd.Flags())
	if err != nil {
		return errext.WithHint(err, "run hisview --help for more information")
	}
	if !cmd.Flags().Changed("zero-sup") && viper.IsSet("zero-sup") {
		cfg.ZeroSup = viper.GetBool("zero-sup")
	}

	base, err := resolveBase(args)
	if err != nil {
		return errext.WithHint(err, "run hisview --help for more information")
	}

	logger.WithField("base", base).Debug("opening catalog")
	reader, err := drr.Open(defaultFs, base)
	if err != nil {
		return errext.WithHint(err, "run hisview --help for more information")
	}
	defer reader.Close()

	if cfg.ID.Valid {
		logger.WithField("id", cfg.ID.Int64).Debug("selected histogram")
	}
	return errext.WithHint(engine.Run(cfg, reader, defaultFs, defaultWriter), "run hisview --help for more information")
}

// resolveBase prefers the positional argument over the config file's "base"
// default, matching how every other option treats a flag as overriding viper.
func resolveBase(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if viper.IsSet("base") {
		return viper.GetString("base"), nil
	}
	return "", errors.New(`a catalog base path is required (positional argument, or "base" in the config file)`)
}

// Execute runs RootCmd, translating any returned error into hisview's exit
// code contract: 0 on success, 1 on any reported failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	err = errext.WithExitCodeIfNone(err, exitcodes.GenericError)
	errext.Fprint(setupLogger(false), err)

	code := exitcodes.GenericError
	var withCode errext.HasExitCode
	if stderrors.As(err, &withCode) {
		code = withCode.ExitCode()
	}
	os.Exit(int(code))
}
