package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sampila/pdfcli/internal/cli"
	"github.com/sampila/pdfcli/internal/config"
)

func newImg2PdfCmd(a *app) *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "img2pdf <image>... -o <output.pdf>",
		Short: "Convert images to a single PDF.",
		Long: `Convert images to a single PDF.

The order of the input images determines the page order.

Example:
  pdfcli img2pdf image1.png image2.jpg image3.webp -o output.pdf`,
		Args: argsAtLeast(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required(output, "output"); err != nil {
				return err
			}
			out, err := cli.ImagesToPDF(a.env, args, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created PDF %s\n", out)
			return nil
		},
	}
	outputFlag(c.Flags(), &output, "", "Output PDF file (path + filename)")
	return c
}

func newPdf2ImgCmd(a *app) *cobra.Command {
	var (
		outputDir string
		pages     string
		format    string
		width     int
		quality   int
		workers   int
		parallel  bool
	)
	c := &cobra.Command{
		Use:   "pdf2img <input.pdf> -o <folder>",
		Short: "Convert PDF pages into images.",
		Long: `Convert PDF pages into images.

Each page is written as page_<n>.png (or .jpg), n being the page number.

Example:
  pdfcli pdf2img file.pdf -o out_images -p 1-3 --format jpeg`,
		Args: argsExactly(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := *a.env
			r := config.Merge(
				config.Config{Render: config.Render{
					Format:      env.Render.Format,
					Width:       env.Render.Width,
					JPEGQuality: env.Render.Quality,
					Workers:     env.Workers,
				}},
				config.Config{Render: config.Render{Format: format, Width: width, JPEGQuality: quality, Workers: workers}},
			).Render
			if err := r.Validate(); err != nil {
				return err
			}
			env.Render = cli.RenderOptions{Width: r.Width, Format: r.Format, Quality: r.JPEGQuality}
			env.Workers = r.Workers

			written, err := cli.PDFToImages(cmd.Context(), &env, args[0], outputDir, pages, parallel)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d images saved to %s\n", len(written), dirOf(written, outputDir))
			return nil
		},
	}
	f := c.Flags()
	outputFlag(f, &outputDir, "out_images", "Output folder")
	f.StringVarP(&pages, "pages", "p", "", "Pages to convert, e.g. '1-3,7' (default all)")
	f.StringVarP(&format, "format", "f", "", "Image format: png or jpeg")
	f.IntVarP(&width, "width", "w", 0, "Output width in pixels")
	f.IntVarP(&quality, "quality", "q", 0, "JPEG quality (1-100)")
	f.IntVar(&workers, "workers", 0, "Pages rendered at once with --parallel")
	f.BoolVar(&parallel, "parallel", false, "Render pages in parallel")
	return c
}

func dirOf(written []string, fallback string) string {
	if len(written) > 0 {
		return filepath.Dir(written[0]) + string(filepath.Separator)
	}
	return fallback
}
