package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashSecretCmd = &cobra.Command{
	Use:   "hash-secret",
	Short: "Read a client secret from stdin and print its bcrypt hash for AUTH_SECRET_HASH",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := bufio.NewScanner(cmd.InOrStdin())
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return errors.New("no secret on stdin")
		}
		secret := strings.TrimSpace(sc.Text())
		if secret == "" {
			return errors.New("secret must not be empty")
		}
		h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(h))
		return nil
	},
}
