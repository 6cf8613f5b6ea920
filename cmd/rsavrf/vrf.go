// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func alphaFlags(flags *pflag.FlagSet) {
	flags.String("alpha", "", "VRF input as a string")
	flags.String("alpha-hex", "", "VRF input, hex encoded")
}

// alpha returns the VRF input. Leaving both alpha flags unset is the empty input.
func (a *app) alpha() ([]byte, error) {
	str, hx := a.vip.GetString("alpha"), a.vip.GetString("alpha-hex")
	switch {
	case str != "" && hx != "":
		return nil, errors.New("--alpha and --alpha-hex are mutually exclusive")
	case hx != "":
		alpha, err := hex.DecodeString(hx)
		if err != nil {
			return nil, fmt.Errorf("invalid --alpha-hex: %v", err)
		}
		return alpha, nil
	default:
		return []byte(str), nil
	}
}

func (a *app) pi() ([]byte, error) {
	pi, err := hex.DecodeString(a.vip.GetString("pi"))
	if err != nil {
		return nil, fmt.Errorf("invalid --pi: %v", err)
	}
	return pi, nil
}

func (a *app) proveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prove",
		Short: "compute the proof and output of a VRF input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.suite()
			if err != nil {
				return err
			}
			sk, err := loadPrivateKey(a.vip.GetString("key"), a.vip.GetString("key-password"))
			if err != nil {
				return err
			}
			alpha, err := a.alpha()
			if err != nil {
				return err
			}

			beta, pi, err := v.Evaluate(sk, alpha)
			if err != nil {
				return err
			}
			log.Debugf("proved %d octets of input with a %d bit key", len(alpha), sk.N.BitLen())

			fmt.Fprintf(cmd.OutOrStdout(), "pi: %x\nbeta: %x\n", pi, beta)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.String("key", "", "Path to the PEM encoded RSA private key")
	flags.String("key-password", "", "Password of an encrypted private key")
	alphaFlags(flags)
	return cmd
}

func (a *app) hashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "compute the VRF output of a trusted proof",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.suite()
			if err != nil {
				return err
			}
			pi, err := a.pi()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "beta: %x\n", v.ProofToHash(pi))
			return nil
		},
	}
	cmd.Flags().String("pi", "", "VRF proof, hex encoded")
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "verify a proof and output the VRF output it carries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.suite()
			if err != nil {
				return err
			}
			pk, err := loadPublicKey(a.vip.GetString("pub"))
			if err != nil {
				return err
			}
			alpha, err := a.alpha()
			if err != nil {
				return err
			}
			pi, err := a.pi()
			if err != nil {
				return err
			}

			beta, err := v.VerifyProof(pk, alpha, pi)
			if err != nil {
				log.WithField("pub", a.vip.GetString("pub")).Warnf("rejected: %v", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "beta: %x\n", beta)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.String("pub", "", "Path to the PEM encoded RSA public key")
	flags.String("pi", "", "VRF proof, hex encoded")
	alphaFlags(flags)
	return cmd
}
