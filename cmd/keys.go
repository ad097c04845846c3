package cmd

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tablebook/internal/auth"
)

func newKeysCmd() *cobra.Command {
	var password string

	c := &cobra.Command{
		Use:   "keys",
		Short: "Generate SESSION_HASH_KEY and SESSION_BLOCK_KEY values (base64)",
		RunE: func(cmd *cobra.Command, args []string) error {
			hash := make([]byte, 32)
			block := make([]byte, 32)
			if _, err := rand.Read(hash); err != nil {
				return err
			}
			if _, err := rand.Read(block); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "export SESSION_HASH_KEY=%s\n", base64.StdEncoding.EncodeToString(hash))
			fmt.Fprintf(os.Stdout, "export SESSION_BLOCK_KEY=%s\n", base64.StdEncoding.EncodeToString(block))

			if password != "" {
				h, err := auth.HashPassword(password)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "export OPERATOR_PASSWORD_BCRYPT=%q\n", h)
			}
			return nil
		},
	}

	c.Flags().StringVar(&password, "password", "", "also emit a bcrypt hash for OPERATOR_PASSWORD_BCRYPT")
	return c
}
