package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/markdown"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Posts  int      `json:"posts"`
	Errors []string `json:"errors,omitempty"`
}

var errInvalidContent = errors.New("content validation failed")

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and content bundle",
		Long: `Load the configuration and content bundle and check them without
starting the server. Fails on unknown YAML keys, malformed dates, duplicate
slugs and posts missing a title or excerpt.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, content, err := loadSite(rootOpts)
			if err != nil {
				return err
			}
			result := validateContent(content)
			if err := writeValidation(cmd, rootOpts.Format, result); err != nil {
				return err
			}
			if !result.Valid {
				return errInvalidContent
			}
			return nil
		},
	}
}

func validateContent(content *folio.Content) ValidationResult {
	var problems []string
	for _, slug := range content.Store.DuplicateSlugs() {
		problems = append(problems, fmt.Sprintf("slug %q is defined more than once", slug))
	}
	for _, p := range content.Store.Posts() {
		if strings.TrimSpace(p.Title) == "" {
			problems = append(problems, fmt.Sprintf("post %q: title is required", p.Slug))
		}
		if strings.TrimSpace(p.Excerpt) == "" {
			problems = append(problems, fmt.Sprintf("post %q: excerpt is required", p.Slug))
		}
		if p.PublishedAt.IsZero() {
			problems = append(problems, fmt.Sprintf("post %q: publishedAt is required", p.Slug))
		}
		if strings.TrimSpace(p.Content) != "" && markdown.HTML(p.Content) == "" {
			problems = append(problems, fmt.Sprintf("post %q: content renders empty", p.Slug))
		}
	}
	if strings.TrimSpace(content.Profile.Name) == "" {
		problems = append(problems, "site.yaml: name is required")
	}
	return ValidationResult{
		Valid:  len(problems) == 0,
		Posts:  content.Store.Len(),
		Errors: problems,
	}
}

func writeValidation(cmd *cobra.Command, format string, result ValidationResult) error {
	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	for _, p := range result.Errors {
		fmt.Fprintf(out, "error: %s\n", p)
	}
	if result.Valid {
		fmt.Fprintf(out, "ok: %d posts\n", result.Posts)
	}
	return nil
}
