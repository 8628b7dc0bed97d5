package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sampila/pdfcli/internal/cli"
)

func newEncryptCmd(a *app) *cobra.Command {
	var (
		output string
		opts   cli.EncryptOptions
	)
	c := &cobra.Command{
		Use:   "encrypt <input.pdf> -o <output.pdf> -u <password>",
		Short: "Encrypt the PDF with a password.",
		Long: fmt.Sprintf(`Encrypt the PDF with a password.

Supports %s. Defaults to %s.

Example:
  pdfcli encrypt file.pdf -o locked.pdf -u 12345 -a AES-128`, strings.Join(cli.Algorithms(), ", "), cli.DefaultAlgorithm),
		Args: argsExactly(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(output, "output"); err != nil {
				return err
			}
			if opts.UserPassword == "" && a.env.Prompt != nil {
				p, err := a.env.Prompt.Password("New password")
				if err != nil {
					return err
				}
				opts.UserPassword = p
			}
			out, err := cli.Encrypt(a.env, args[0], output, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Encrypted and saved to %s\n", out)
			return nil
		},
	}
	outputFlag(c.Flags(), &output, "", "Output PDF file (path + filename)")
	c.Flags().StringVarP(&opts.UserPassword, "user-password", "u", "", "Password needed to open the output")
	c.Flags().StringVar(&opts.OwnerPassword, "owner-password", "", "Owner password (defaults to the user password)")
	c.Flags().StringVarP(&opts.Algorithm, "algorithm", "a", cli.DefaultAlgorithm, "Encryption algorithm")
	return c
}

func newCompressCmd(a *app) *cobra.Command {
	var (
		output string
		level  int
	)
	c := &cobra.Command{
		Use:   "compress <input.pdf> -o <output.pdf> [-l level]",
		Short: "Compress a PDF file into a smaller size.",
		Long: `Compress a PDF file into a smaller size.

Level 0 only removes duplicate objects, higher levels compress streams and,
from level 7, recompress images.

Example:
  pdfcli compress input.pdf -o output.pdf -l 5`,
		Args: argsExactly(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(output, "output"); err != nil {
				return err
			}
			out, reduced, err := cli.Compress(a.env, args[0], output, level)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s, size reduced by %.2f%%.\n", out, reduced)
			return nil
		},
	}
	outputFlag(c.Flags(), &output, "", "Output PDF file (path + filename)")
	c.Flags().IntVarP(&level, "level", "l", 5, "Compression level (0-9)")
	return c
}
