package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Format     string // "text" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the folio CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "folio - portfolio and blog site",
		Long: `folio serves a personal portfolio and blog: profile pages, a read-only
blog rendered from Markdown, RSS and sitemap feeds, and a contact form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: folio.yaml in . or ./config)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewPostsCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// loadSite reads the configuration and the content bundle it points at.
func loadSite(opts *RootOptions) (folio.SiteConfig, *folio.Content, error) {
	cfg, err := folio.LoadConfig(opts.ConfigPath)
	if err != nil {
		return folio.SiteConfig{}, nil, err
	}
	content, err := folio.LoadContent(contentFS(cfg))
	if err != nil {
		return folio.SiteConfig{}, nil, fmt.Errorf("folio: load content: %w", err)
	}
	return cfg, content, nil
}

func contentFS(cfg folio.SiteConfig) fs.FS {
	if cfg.ContentDir != "" {
		return os.DirFS(cfg.ContentDir)
	}
	return folio.DefaultContentFS()
}
