package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/mentorhub/internal/config"
	"github.com/kailas-cloud/mentorhub/internal/db/embedded"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	"github.com/kailas-cloud/mentorhub/internal/repository/application"
	directoryuc "github.com/kailas-cloud/mentorhub/internal/usecase/directory"
)

const defaultSeedPath = "config/seed.yaml"

type listFlag struct {
	name  string
	usage string
}

func newMentorsCmd() *cobra.Command {
	return newListCmd("mentors", "Filter the mentor directory of a seed file",
		[]listFlag{
			{directoryuc.MentorSearch, "substring of name or skill"},
			{directoryuc.MentorSkill, "exact skill"},
			{directoryuc.MentorRating, "minimum rating"},
			{directoryuc.MentorExperience, "experience level: 1-3, 4-6 or 7+"},
			{directoryuc.MentorAvailability, "availability, e.g. \"Available Now\""},
		},
		func(ctx context.Context, svc *directoryuc.Service, c filter.Criteria) (any, error) {
			return svc.ListMentors(ctx, c)
		},
	)
}

func newProjectsCmd() *cobra.Command {
	return newListCmd("projects", "Filter the project catalog of a seed file",
		[]listFlag{
			{directoryuc.ProjectSearch, "substring of title or description"},
			{directoryuc.ProjectSkill, "exact skill"},
			{directoryuc.ProjectDuration, "duration, e.g. \"2-4 weeks\""},
			{directoryuc.ProjectDifficulty, "difficulty: Easy, Medium or Hard"},
		},
		func(ctx context.Context, svc *directoryuc.Service, c filter.Criteria) (any, error) {
			return svc.ListProjects(ctx, c)
		},
	)
}

type listFunc func(ctx context.Context, svc *directoryuc.Service, c filter.Criteria) (any, error)

// newListCmd builds an offline listing command. Only flags set on the command
// line become criteria, so an explicit empty value still means "unset".
func newListCmd(use, short string, flags []listFlag, list listFunc) *cobra.Command {
	var seedPath string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + ".\nThe seed file is loaded into an in-memory store and the result is printed as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := filter.Criteria{}
			for _, f := range flags {
				if !cmd.Flags().Changed(f.name) {
					continue
				}
				v, err := cmd.Flags().GetString(f.name)
				if err != nil {
					return err
				}
				c = c.With(f.name, v)
			}

			svc, closeFn, err := offlineDirectory(cmd.Context(), seedPath)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := list(cmd.Context(), svc, c)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&seedPath, "seed", defaultSeedPath, "path to the seed file")
	for _, f := range flags {
		cmd.Flags().String(f.name, "", f.usage)
	}
	return cmd
}

// offlineDirectory seeds an in-memory store and returns a directory service over it.
func offlineDirectory(ctx context.Context, seedPath string) (*directoryuc.Service, func(), error) {
	store, err := embedded.NewInMemory()
	if err != nil {
		return nil, nil, fmt.Errorf("open in-memory store: %w", err)
	}

	repos := newRepositories(store)
	_, err = bootstrap(ctx, config.SeedConfig{Path: seedPath, Mode: config.SeedAlways}, repos.targets(), zap.NewNop())
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return directoryuc.New(repos.mentors, repos.projects, application.New(store)), store.Close, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
