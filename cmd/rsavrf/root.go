// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rsavrf "github.com/vechain/go-rsavrf"
)

const envPrefix = "RSAVRF"

// app holds what every subcommand shares. Settings resolve through vip:
// flags first, then RSAVRF_* environment variables, then the config file.
type app struct {
	vip *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{vip: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "rsavrf",
		Short:         "prove, hash and verify RSA-FDH-VRF proofs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			//If no arguments passed, we should fallback to help
			cmd.HelpFunc()(cmd, args)
		},
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to configuration file")
	flags.String("suite", "sha256", "Hash suite, one of: "+strings.Join(rsavrf.Suites(), ", "))
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		a.proveCmd(),
		a.hashCmd(),
		a.verifyCmd(),
		a.suitesCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())

	if err := a.vip.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.vip.SetEnvPrefix(envPrefix)
	a.vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.vip.AutomaticEnv()

	if file := a.vip.GetString("config"); file != "" {
		a.vip.SetConfigFile(file)
		if err := a.vip.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %v", err)
		}
	}

	level, err := log.ParseLevel(a.vip.GetString("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.Debugf("config file: %q", a.vip.ConfigFileUsed())
	return nil
}

func (a *app) suite() (rsavrf.VRF, error) {
	name := a.vip.GetString("suite")
	v, err := rsavrf.Suite(name)
	if err != nil {
		return nil, err
	}
	log.Debugf("suite %s, hLen %d", name, v.HashLen())
	return v, nil
}

func (a *app) suitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suites",
		Short: "list the supported hash suites",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range rsavrf.Suites() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
