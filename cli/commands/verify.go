// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dualsig/dualsig/common"
	"github.com/dualsig/dualsig/common/crypto"
	"github.com/dualsig/dualsig/executor"
	"github.com/dualsig/dualsig/system/crypto/secp256k1rec"
	"github.com/dualsig/dualsig/types"
)

// DefaultScheme the fingerprint scheme used unless the environment was
// registered under another one.
const DefaultScheme = "blake160"

// VerifyCmd run the verification pipeline
func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "verify a 2-of-2 authorization, the process exits with the outcome code",
		Run: func(cmd *cobra.Command, args []string) {
			cfgArg, _ := cmd.Flags().GetString("config")
			proofArg, _ := cmd.Flags().GetString("proof")
			hashHex, _ := cmd.Flags().GetString("hash")
			scheme, _ := cmd.Flags().GetString("scheme")
			outcome, err := verify(cfgArg, proofArg, hashHex, scheme)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stdout, "%s (%d)\n", outcome, outcome.Code())
			os.Exit(outcome.Code())
		},
	}
	addVerifyFlags(cmd)
	return cmd
}

func addVerifyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "authorization config buffer, hex or @file")
	cmd.Flags().StringP("proof", "p", "", "authorization proof buffer, hex or @file")
	cmd.Flags().StringP("hash", "m", "", "32 byte transaction digest, hex")
	addSchemeFlag(cmd)
	cmd.MarkFlagRequired("config")
	cmd.MarkFlagRequired("proof")
	cmd.MarkFlagRequired("hash")
}

func verify(cfgArg, proofArg, hashHex, scheme string) (types.Outcome, error) {
	fpr, err := crypto.NewFingerprinter(scheme)
	if err != nil {
		return 0, err
	}
	rec, err := crypto.NewRecoverer(secp256k1rec.Name)
	if err != nil {
		return 0, err
	}
	cfgBuf, err := loadBuffer(cfgArg)
	if err != nil {
		return 0, errors.Wrap(err, "load config")
	}
	proofBuf, err := loadBuffer(proofArg)
	if err != nil {
		return 0, errors.Wrap(err, "load proof")
	}
	hash, err := common.FromHex(hashHex)
	if err != nil {
		return 0, errors.Wrap(err, "decode hash")
	}
	if len(hash) != types.HashLen {
		return 0, errors.Errorf("hash must be %d bytes, got %d", types.HashLen, len(hash))
	}

	env := executor.NewBufEnv(cfgBuf, proofBuf, hash)
	return executor.NewVerifier(env, rec, fpr).Verify(), nil
}

// loadBuffer reads a hex argument, @file means the raw bytes of file.
func loadBuffer(arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "@") {
		b, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, errors.Wrap(err, "read file")
		}
		return b, nil
	}
	return common.FromHex(arg)
}
