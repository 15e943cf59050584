// Package cli implements the cardmaker command-line interface.
//
// cardmaker has a single command that renders one social preview card and
// writes it to disk. Flags may also come from a TOML file given with
// --config; flags set on the command line win over the file. Logging uses
// charmbracelet/log, info by default and debug with --verbose, and the logger
// travels to the renderer through the command's context.
package cli

import (
	"context"
	"image"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rook-computer/cardmaker/internal/buildinfo"
	"github.com/rook-computer/cardmaker/internal/console"
	"github.com/rook-computer/cardmaker/internal/render"
)

// EnvStdioLog names the environment variable that provides the default for
// --stdio-log.
const EnvStdioLog = "CARDMAKER_STDIO_LOG"

// cardOpts holds the command-line flags.
type cardOpts struct {
	output      string
	title       string
	subtitle    string
	author      string
	sha         string
	logo        string
	githubMark  string
	fontRegular string
	fontBold    string
	qr          string
	framebuffer string
	hold        time.Duration
	config      string
	stdioLog    string
	verbose     bool
}

// RedirectFunc points the process's stdout and stderr at a file.
type RedirectFunc func(path string) error

// Execute runs cardmaker with os.Args and returns the first error.
func Execute(ctx context.Context, redirect RedirectFunc) error {
	return NewRootCommand(redirect).ExecuteContext(ctx)
}

// NewRootCommand builds the cardmaker command. redirect may be nil, in which
// case --stdio-log is ignored.
func NewRootCommand(redirect RedirectFunc) *cobra.Command {
	opts := cardOpts{
		output:      "social_preview.png",
		title:       "username/repo",
		subtitle:    "A project description.",
		logo:        "assets/brand-logo.png",
		githubMark:  "assets/github-mark.png",
		fontRegular: render.DefaultRegularFont,
		fontBold:    render.DefaultBoldFont,
		stdioLog:    os.Getenv(EnvStdioLog),
	}

	cmd := &cobra.Command{
		Use:          "cardmaker",
		Short:        "Render a social preview card for a repository",
		Long:         `cardmaker renders a 1280x640 social preview image with the repository name, description, stats, avatar and branding bar.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if redirect != nil && opts.stdioLog != "" {
				if err := redirect(opts.stdioLog); err != nil {
					return err
				}
			}
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.config != "" {
				cfg, err := loadConfig(opts.config)
				if err != nil {
					return err
				}
				cfg.apply(cmd, &opts)
			}
			return runCard(cmd.Context(), &opts)
		},
	}

	cmd.SetVersionTemplate(buildinfo.Template())

	f := cmd.Flags()
	f.StringVar(&opts.output, "output", opts.output, "output file path (format from extension)")
	f.StringVar(&opts.title, "title", opts.title, "owner/repo, split on the first slash")
	f.StringVar(&opts.subtitle, "subtitle", opts.subtitle, "description, wrapped to at most three lines")
	f.StringVar(&opts.author, "author", "", "author shown as \"by <author>\"")
	f.StringVar(&opts.sha, "sha", "", "commit hash, first seven characters shown")
	f.StringVar(&opts.logo, "logo", opts.logo, "avatar image, skipped when missing")
	f.StringVar(&opts.githubMark, "github-mark", opts.githubMark, "badge image, a drawn GH badge when missing")
	f.StringVar(&opts.fontRegular, "font-regular", opts.fontRegular, "regular font file")
	f.StringVar(&opts.fontBold, "font-bold", opts.fontBold, "bold font file")
	f.StringVar(&opts.qr, "qr", "", "payload for a QR code under the avatar")
	f.StringVar(&opts.framebuffer, "framebuffer", "", "also show the card on this framebuffer device, e.g. /dev/fb0")
	f.DurationVar(&opts.hold, "hold", 0, "keep the framebuffer preview up this long with the console in graphics mode")
	f.StringVar(&opts.config, "config", "", "TOML file with defaults for the flags above")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.stdioLog, "stdio-log", opts.stdioLog, "redirect stdout and stderr to this file; also "+EnvStdioLog)
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// runCard renders the card and writes it. Only the write can fail the run.
func runCard(ctx context.Context, opts *cardOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	fonts := render.NewFontSet(opts.fontRegular, opts.fontBold, logger)
	renderer := render.NewRenderer(fonts, logger)
	canvas := renderer.Render(render.Card{
		Title:    opts.title,
		Subtitle: opts.subtitle,
		Author:   opts.author,
		SHA:      opts.sha,
		LogoPath: opts.logo,
		MarkPath: opts.githubMark,
		QRCode:   opts.qr,
	})

	if err := render.Save(canvas, opts.output); err != nil {
		return err
	}
	prog.done("Generated " + opts.output)

	if opts.framebuffer != "" {
		return showPreview(ctx, opts, canvas)
	}
	return nil
}

// showPreview puts the card on the framebuffer. Preview problems are logged,
// never returned; only an interrupt while holding the preview is.
func showPreview(ctx context.Context, opts *cardOpts, canvas *image.RGBA) error {
	logger := loggerFromContext(ctx)
	if opts.hold > 0 {
		restore, err := console.Graphics()
		if err != nil {
			logger.Warnf("Console stays in text mode: %v", err)
		} else {
			defer func() {
				if err := restore(); err != nil {
					logger.Warnf("Console restore failed: %v", err)
				}
			}()
		}
	}

	if err := render.Preview(opts.framebuffer, canvas); err != nil {
		logger.Warnf("Preview skipped: %v", err)
		return nil
	}
	logger.Debugf("Shown on %s", opts.framebuffer)
	if opts.hold <= 0 {
		return nil
	}

	timer := time.NewTimer(opts.hold)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
