// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/dualsig/dualsig/cli/commands"
	clog "github.com/dualsig/dualsig/common/log"
	_ "github.com/dualsig/dualsig/system"
)

type config struct {
	Title string      `toml:"title"`
	Log   clog.Config `toml:"log"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "dualsig",
		Short: "2-of-2 secp256k1 transaction authorization tool",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			conf, _ := cmd.Flags().GetString("conf")
			initLog(conf)
		},
	}
	rootCmd.PersistentFlags().String("conf", "", "toml config file (logging)")

	rootCmd.AddCommand(
		commands.KeygenCmd(),
		commands.FingerprintCmd(),
		commands.SignCmd(),
		commands.ConfigCmd(),
		commands.ProofCmd(),
		commands.VerifyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLog(confFile string) {
	if confFile == "" {
		clog.SetLogLevel("error")
		return
	}
	var cfg config
	if _, err := toml.DecodeFile(confFile, &cfg); err != nil {
		fmt.Fprintln(os.Stderr, "decode config:", err)
		os.Exit(1)
	}
	clog.SetFileLog(&cfg.Log)
}
