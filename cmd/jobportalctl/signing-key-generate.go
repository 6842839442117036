package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// signingKeyGenerateCmd represents the signing-key > generate command
var signingKeyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a token signing key",
	Long: `
Generate a token signing key

Use this command to generate a new Base64-encoded 256 bit token signing key.
Once generated, this key should be placed into the environment of the job
portal server. It is used to sign and verify the bearer tokens issued to
authenticated users.

Example:

$ export JOBPORTAL_TOKEN_SIGNING_KEY="$(jobportalctl signing-key generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		bytes := make([]byte, 32)
		if _, err := rand.Read(bytes); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate signing key: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s", base64.StdEncoding.Strict().EncodeToString(bytes))
	},
}

func init() {
	signingKeyCmd.AddCommand(signingKeyGenerateCmd)
}
