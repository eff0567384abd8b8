// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dualsig/dualsig/common"
	"github.com/dualsig/dualsig/types"
)

// ProofCmd assemble a 132 byte authorization proof buffer
func ProofCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proof",
		Short: "assemble the 132 byte proof buffer from two signatures and two selectors",
		Run: func(cmd *cobra.Command, args []string) {
			sig0, _ := cmd.Flags().GetString("sig0")
			sig1, _ := cmd.Flags().GetString("sig1")
			sel0, _ := cmd.Flags().GetUint8("sel0")
			sel1, _ := cmd.Flags().GetUint8("sel1")
			if err := buildProof(sig0, sig1, sel0, sel1); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	addProofFlags(cmd)
	return cmd
}

func addProofFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("sig0", "", "", "first 65 byte recoverable signature, hex")
	cmd.Flags().StringP("sig1", "", "", "second 65 byte recoverable signature, hex")
	cmd.Flags().Uint8P("sel0", "", 0, "key selector bound to signature 0")
	cmd.Flags().Uint8P("sel1", "", 1, "key selector bound to signature 1")
	cmd.MarkFlagRequired("sig0")
	cmd.MarkFlagRequired("sig1")
}

func buildProof(sig0Hex, sig1Hex string, sel0, sel1 byte) error {
	sig0, err := fixedHex("sig0", sig0Hex, types.SigLen)
	if err != nil {
		return err
	}
	sig1, err := fixedHex("sig1", sig1Hex, types.SigLen)
	if err != nil {
		return err
	}
	buf := make([]byte, 0, types.ProofLen)
	buf = append(buf, sig0...)
	buf = append(buf, sig1...)
	buf = append(buf, sel0, sel1)
	fmt.Fprintln(os.Stdout, common.ToHex(buf))
	return nil
}
