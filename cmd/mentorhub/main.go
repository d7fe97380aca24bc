// mentorhub serves the mentor directory, project catalog, mentorship requests
// and student dashboards.
//
// Usage:
//
//	mentorhub serve
//	mentorhub mentors [--search=] [--skill=] [--rating=] [--experience=] [--availability=]
//	mentorhub projects [--search=] [--skill=] [--duration=] [--difficulty=]
//	mentorhub version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/mentorhub/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mentorhub",
		Short: "Mentorship platform API",
		Long:  "mentorhub serves the mentor directory, project catalog, mentorship requests\nand student dashboards over HTTP.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		Version:      version.String(),
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newMentorsCmd())
	root.AddCommand(newProjectsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
