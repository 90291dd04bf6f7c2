// cmd/checklist/main.go
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"checklist/internal/checklist"
	"checklist/internal/config"
	"checklist/internal/errors"
	"checklist/internal/lister"
	"checklist/internal/logging"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	dir        string
	logLevel   string
	gitBinary  string
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var opts options
	var logger *logging.Logger

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Print the files tracked by git as a markdown checklist",
		Long: `Checklist lists every file tracked by the git repository in the current
directory and prints it as a nested markdown checklist, one "- [ ]" item per
directory or file, sorted by name at every level.`,
		Example: `  checklist > REVIEW.md
  checklist -C ../other-repo`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return errors.ValidationError(fmt.Sprintf("loading config: %v", err), opts.configPath)
			}
			if cmd.Flags().Changed("dir") {
				cfg.Git.Dir = opts.dir
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			opts.dir = cfg.Git.Dir
			opts.gitBinary = cfg.Git.Binary

			base, err := logging.NewLogger(cfg.LogLevel)
			if err != nil {
				return errors.ValidationError(fmt.Sprintf("invalid log level %q", cfg.LogLevel), cfg.LogLevel)
			}
			logger = base.WithRunID()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()

			l := lister.NewGitLister(opts.dir, logger.Logger)
			l.Binary = opts.gitBinary

			if _, err := checklist.NewGenerator(l, logger.Logger).WriteTo(stdout); err != nil {
				logger.Debug("checklist failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.Flags().StringVarP(&opts.dir, "dir", "C", ".", "Run as if started in this directory")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Optional JSON config file")

	return cmd
}

// exitCode maps an error from the root command to a process status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *errors.Error
	if stderrors.As(err, &e) && e.Code != 0 {
		return e.Code
	}
	return errors.ExitFailure
}

func printError(w io.Writer, err error, useColor bool) {
	prefix := color.New(color.FgRed, color.Bold)
	if useColor {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", prefix.Sprint("error:"), err)
}

func run(args []string, stdout, stderr io.Writer, useColor bool) int {
	cmd := newRootCmd(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		printError(stderr, err, useColor)
		return exitCode(err)
	}
	return 0
}

func main() {
	fd := os.Stderr.Fd()
	useColor := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, useColor))
}
