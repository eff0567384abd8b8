// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dualsig/dualsig/common"
	"github.com/dualsig/dualsig/types"
)

// ConfigCmd assemble an authorization config buffer
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "assemble an authorization config buffer from two fingerprints",
		Run: func(cmd *cobra.Command, args []string) {
			fp0, _ := cmd.Flags().GetString("fp0")
			fp1, _ := cmd.Flags().GetString("fp1")
			routing, _ := cmd.Flags().GetString("routing")
			codeHash, _ := cmd.Flags().GetString("code-hash")
			hashType, _ := cmd.Flags().GetUint8("hash-type")
			if err := buildConfig(fp0, fp1, routing, codeHash, hashType); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	addConfigFlags(cmd)
	return cmd
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("fp0", "", "", "first registered key fingerprint, 20 byte hex")
	cmd.Flags().StringP("fp1", "", "", "second registered key fingerprint, 20 byte hex")
	cmd.Flags().StringP("routing", "", "0000", "2 byte routing prefix, hex")
	cmd.Flags().StringP("code-hash", "", "", "32 byte executor code identity, hex (zero if empty)")
	cmd.Flags().Uint8P("hash-type", "", 1, "hash-type tag byte")
	cmd.MarkFlagRequired("fp0")
	cmd.MarkFlagRequired("fp1")
}

func buildConfig(fp0Hex, fp1Hex, routingHex, codeHashHex string, hashType byte) error {
	fp0, err := fixedHex("fp0", fp0Hex, types.FingerprintLen)
	if err != nil {
		return err
	}
	fp1, err := fixedHex("fp1", fp1Hex, types.FingerprintLen)
	if err != nil {
		return err
	}
	routing, err := fixedHex("routing", routingHex, types.RoutingPrefixLen)
	if err != nil {
		return err
	}
	codeHash := make([]byte, types.CodeHashLen)
	if codeHashHex != "" {
		if codeHash, err = fixedHex("code-hash", codeHashHex, types.CodeHashLen); err != nil {
			return err
		}
	}

	buf := make([]byte, 0, types.MinConfigLen)
	buf = append(buf, routing...)
	buf = append(buf, codeHash...)
	buf = append(buf, hashType)
	buf = append(buf, types.KeyCount) // threshold
	buf = append(buf, types.KeyCount) // key count
	buf = append(buf, fp0...)
	buf = append(buf, fp1...)
	fmt.Fprintln(os.Stdout, common.ToHex(buf))
	return nil
}

func fixedHex(name, s string, size int) ([]byte, error) {
	b, err := common.FromHex(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	if len(b) != size {
		return nil, errors.Errorf("%s must be %d bytes, got %d", name, size, len(b))
	}
	return b, nil
}
