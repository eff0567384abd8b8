// Copyright The Dualsig Authors 2022 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands cobra subcommands of the dualsig tool: key handling,
// buffer assembly and verification.
package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dualsig/dualsig/common"
	"github.com/dualsig/dualsig/common/address"
	"github.com/dualsig/dualsig/common/crypto"
	"github.com/dualsig/dualsig/system/crypto/secp256k1rec"
	"github.com/dualsig/dualsig/types"
)

// KeygenCmd generate a secp256k1 keypair
func KeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "generate a secp256k1 keypair and print its fingerprint",
		Run: func(cmd *cobra.Command, args []string) {
			scheme, _ := cmd.Flags().GetString("scheme")
			if err := keygen(scheme); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	addSchemeFlag(cmd)
	return cmd
}

func keygen(scheme string) error {
	fpr, err := crypto.NewFingerprinter(scheme)
	if err != nil {
		return err
	}
	priv := secp256k1rec.GenKey()
	pub, err := secp256k1rec.PubKey(priv)
	if err != nil {
		return errors.Wrap(err, "derive pubkey")
	}
	fp := fpr.Fingerprint(pub)
	fmt.Fprintf(os.Stdout, "privkey: %s\n", common.ToHex(priv))
	fmt.Fprintf(os.Stdout, "pubkey: %s\n", common.ToHex(pub))
	fmt.Fprintf(os.Stdout, "fingerprint(%s): %s\n", scheme, fp)
	fmt.Fprintf(os.Stdout, "address: %s\n", address.Encode(fp))
	return nil
}

// FingerprintCmd fingerprint of a public key
func FingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "print the fingerprint and address of an uncompressed public key",
		Run: func(cmd *cobra.Command, args []string) {
			pubHex, _ := cmd.Flags().GetString("pubkey")
			scheme, _ := cmd.Flags().GetString("scheme")
			if err := fingerprint(pubHex, scheme); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringP("pubkey", "p", "", "65 byte uncompressed public key, hex")
	cmd.MarkFlagRequired("pubkey")
	addSchemeFlag(cmd)
	return cmd
}

func fingerprint(pubHex, scheme string) error {
	fpr, err := crypto.NewFingerprinter(scheme)
	if err != nil {
		return err
	}
	pub, err := common.FromHex(pubHex)
	if err != nil {
		return errors.Wrap(err, "decode pubkey")
	}
	if len(pub) != types.PubKeyLen {
		return errors.Errorf("pubkey must be %d bytes, got %d", types.PubKeyLen, len(pub))
	}
	fp := fpr.Fingerprint(pub)
	fmt.Fprintf(os.Stdout, "fingerprint(%s): %s\n", scheme, fp)
	fmt.Fprintf(os.Stdout, "address: %s\n", address.Encode(fp))
	return nil
}

// SignCmd recoverable signature over a digest
func SignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "sign a 32 byte digest, output is 65 byte [R || S || V] hex",
		Run: func(cmd *cobra.Command, args []string) {
			keyHex, _ := cmd.Flags().GetString("key")
			hashHex, _ := cmd.Flags().GetString("hash")
			if err := sign(keyHex, hashHex); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringP("key", "k", "", "32 byte private key, hex")
	cmd.Flags().StringP("hash", "m", "", "32 byte transaction digest, hex")
	cmd.MarkFlagRequired("key")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func sign(keyHex, hashHex string) error {
	key, err := common.FromHex(keyHex)
	if err != nil {
		return errors.Wrap(err, "decode key")
	}
	hash, err := common.FromHex(hashHex)
	if err != nil {
		return errors.Wrap(err, "decode hash")
	}
	if len(hash) != types.HashLen {
		return errors.Errorf("hash must be %d bytes, got %d", types.HashLen, len(hash))
	}
	sig, err := secp256k1rec.Sign(hash, key)
	if err != nil {
		return errors.Wrap(err, "sign")
	}
	fmt.Fprintln(os.Stdout, common.ToHex(sig))
	return nil
}

func addSchemeFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("scheme", "s", DefaultScheme,
		fmt.Sprintf("fingerprint scheme, one of %v", crypto.FingerprinterList()))
}
