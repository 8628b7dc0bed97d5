package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sampila/pdfcli/internal/cli"
)

func required(value, flag string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: --%s is required", cli.ErrInvalidInput, flag)
	}
	return nil
}

func newMergeCmd(a *app) *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "merge <input.pdf>... -o <output.pdf>",
		Short: "Merge multiple PDF files into one.",
		Long: `Merge multiple PDF files into one.

Example:
  pdfcli merge file1.pdf file2.pdf -o merged.pdf`,
		Args: argsAtLeast(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(output, "output"); err != nil {
				return err
			}
			out, err := cli.Merge(a.env, args, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully merged into %s\n", out)
			return nil
		},
	}
	outputFlag(c.Flags(), &output, "", "Output PDF file (path + filename)")
	return c
}

func newReorderCmd(a *app) *cobra.Command {
	var output, order string
	c := &cobra.Command{
		Use:   "reorder <input.pdf> -o <output.pdf> -r <order>",
		Short: "Reorder PDF pages.",
		Long: `Reorder PDF pages.

Duplicates are ignored, only the first occurrence is used. Pages not specified
in the order are appended at the end in their original sequence. Use "trim"
instead if you want to keep only the specified pages.

Example:
  pdfcli reorder input.pdf -o output.pdf -r 3,1,2`,
		Args: argsExactly(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(output, "output"); err != nil {
				return err
			}
			if err := required(order, "order"); err != nil {
				return err
			}
			out, err := cli.Reorder(a.env, args[0], output, order)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reordered and saved to %s\n", out)
			return nil
		},
	}
	outputFlag(c.Flags(), &output, "", "Output PDF file (path + filename)")
	c.Flags().StringVarP(&order, "order", "r", "", "New page order, e.g. '3,1,2' or '8-5,1'")
	return c
}

func newTrimCmd(a *app) *cobra.Command {
	var output, pages string
	c := &cobra.Command{
		Use:   "trim <input.pdf> -o <output.pdf> -p <pages>",
		Short: "Keep only the given pages, in the given order.",
		Long: `Keep only the given pages, in the given order.

Ranges may run backwards. Repeated pages are kept once.

Example:
  pdfcli trim input.pdf -o output.pdf -p 1-5,7,10-12,9`,
		Args: argsExactly(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(output, "output"); err != nil {
				return err
			}
			if err := required(pages, "pages"); err != nil {
				return err
			}
			out, err := cli.Trim(a.env, args[0], output, pages)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Trimmed and saved to %s\n", out)
			return nil
		},
	}
	outputFlag(c.Flags(), &output, "", "Output PDF file (path + filename)")
	c.Flags().StringVarP(&pages, "pages", "p", "", "Pages to keep, e.g. '1-5,7,10-12,9'")
	return c
}

func newSplitCmd(a *app) *cobra.Command {
	var outputDir, parts string
	c := &cobra.Command{
		Use:   "split <input.pdf> -o <folder> -p <parts>",
		Short: "Split the PDF into multiple PDFs.",
		Long: `Split the PDF into multiple PDFs.

Each comma separated part, a page or a range, becomes its own file. Pages can
repeat across parts. Use 'trim' to compile different pages into one file.

Example (creates 3 PDFs):
  pdfcli split input.pdf -o out_pdfs -p 1-5,3-6,7`,
		Args: argsExactly(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(parts, "pages"); err != nil {
				return err
			}
			written, err := cli.Split(a.env, args[0], outputDir, parts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully split into %d files in %s\n", len(written), dirOf(written, outputDir))
			return nil
		},
	}
	outputFlag(c.Flags(), &outputDir, "out_pdfs", "Output folder")
	c.Flags().StringVarP(&parts, "pages", "p", "", "Parts to split out, e.g. '1-5,3-6,7'")
	return c
}
