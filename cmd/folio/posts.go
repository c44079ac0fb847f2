package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

type postSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	PublishedAt string   `json:"publishedAt"`
	ReadTime    int      `json:"readTime"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// NewPostsCommand creates the posts command.
func NewPostsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "posts",
		Short: "List posts in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, content, err := loadSite(rootOpts)
			if err != nil {
				return err
			}
			return writePosts(cmd, rootOpts.Format, content.Store.Posts())
		},
	}
}

func writePosts(cmd *cobra.Command, format string, posts []folio.BlogPost) error {
	out := cmd.OutOrStdout()
	if format == "json" {
		summaries := make([]postSummary, len(posts))
		for i, p := range posts {
			summaries[i] = postSummary{
				Slug:        p.Slug,
				Title:       p.Title,
				PublishedAt: p.PublishedAt.String(),
				ReadTime:    p.ReadTime,
				Tags:        p.Tags,
				Featured:    p.Featured,
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tDATE\tREAD\tTAGS\tTITLE")
	for _, p := range posts {
		title := p.Title
		if p.Featured {
			title += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.Slug, p.PublishedAt, folio.ReadTimeLabel(p.ReadTime), strings.Join(p.Tags, ","), title)
	}
	return tw.Flush()
}
