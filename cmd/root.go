package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/unidoc/unipdf/v4/common/license"

	"github.com/sampila/pdfcli/internal/cli"
	"github.com/sampila/pdfcli/internal/config"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

// app holds the persistent flags and, after setup, the resolved Env that
// subcommands run against.
type app struct {
	configPath string
	logLevel   string
	password   string
	yes        bool

	env *cli.Env
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "pdfcli",
		Short: "A simple PDF CLI tool.",
		Long: `A simple PDF CLI tool.

Easily merge PDFs, convert between PDF and images, rearrange PDF pages, and trim a PDF.
Run 'pdfcli [command] --help' for specific command help.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetVersionTemplate("pdfcli version {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrInvalidInput, err)
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (YAML). Defaults to $PDFCLI_CONFIG or ./"+config.DefaultFile)
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&a.password, "password", "", "Password for encrypted input PDFs")
	pf.BoolVarP(&a.yes, "yes", "y", false, "Overwrite existing outputs without asking")

	rootCmd.AddCommand(
		newMergeCmd(a),
		newReorderCmd(a),
		newTrimCmd(a),
		newSplitCmd(a),
		newImg2PdfCmd(a),
		newPdf2ImgCmd(a),
		newEncryptCmd(a),
		newCompressCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	over := config.Config{LogLevel: a.logLevel, Password: a.password}
	if cmd.Flags().Changed("yes") {
		yes := a.yes
		over.AssumeYes = &yes
	}
	cfg, err := config.Load(config.ResolvePath(a.configPath), over)
	if err != nil {
		return err
	}

	log, err := cli.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	if cfg.LicenseKey != "" {
		if err := license.SetMeteredKey(cfg.LicenseKey); err != nil {
			return fmt.Errorf("unipdf license: %w", err)
		}
	} else {
		log.Warn("UNIDOC_LICENSE_API_KEY is not set, PDF output may be refused")
	}

	env := cli.NewEnv(log, cmd.OutOrStdout())
	env.AssumeYes = cfg.Yes()
	env.Password = cfg.Password
	env.Render = cli.RenderOptions{
		Width:   cfg.Render.Width,
		Format:  cfg.Render.Format,
		Quality: cfg.Render.JPEGQuality,
	}
	env.Workers = cfg.Render.Workers
	a.env = env

	log.WithField("command", cmd.Name()).Debug("configured")
	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error! %v\nPlease check and try again.\n", err)
	}
	return cli.ExitCode(err)
}

// outputFlag registers the -o/--output flag shared by the commands.
func outputFlag(fs *pflag.FlagSet, p *string, def, usage string) {
	fs.StringVarP(p, "output", "o", def, usage)
}

// argsAtLeast is cobra.MinimumNArgs with a classifiable error.
func argsAtLeast(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", cli.ErrInvalidInput, err)
		}
		return nil
	}
}

func argsExactly(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", cli.ErrInvalidInput, err)
		}
		return nil
	}
}
