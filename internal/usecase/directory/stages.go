package directory

import (
	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	"github.com/kailas-cloud/mentorhub/internal/usecase/search"
)

// Criteria keys accepted by the mentor directory.
const (
	MentorSearch       = "search"
	MentorSkill        = "skill"
	MentorRating       = "rating"
	MentorExperience   = "experience"
	MentorAvailability = "availability"
)

// Criteria keys accepted by the project catalog.
const (
	ProjectSearch     = "search"
	ProjectSkill      = "skill"
	ProjectDuration   = "duration"
	ProjectDifficulty = "difficulty"
)

// ExperienceLevels are the experience filter options, in years.
var ExperienceLevels = filter.MustBuckets(
	filter.Bucket{Label: "1-3", Interval: filter.Between(1, 3)},
	filter.Bucket{Label: "4-6", Interval: filter.Between(4, 6)},
	filter.Bucket{Label: "7+", Interval: filter.From(7)},
)

// MentorEngine filters the mentor directory.
var MentorEngine = search.MustEngine(mentor.Schema,
	filter.Search(MentorSearch, mentor.FieldName, mentor.FieldSkills),
	filter.Member(MentorSkill, mentor.FieldSkills),
	filter.AtLeast(MentorRating, mentor.FieldRating),
	filter.InBucket(MentorExperience, mentor.FieldExperience, ExperienceLevels),
	filter.Equal(MentorAvailability, mentor.FieldAvailability),
)

// ProjectEngine filters the project catalog.
var ProjectEngine = search.MustEngine(project.Schema,
	filter.Search(ProjectSearch, project.FieldTitle, project.FieldDescription),
	filter.Member(ProjectSkill, project.FieldSkills),
	filter.Equal(ProjectDuration, project.FieldDuration),
	filter.Equal(ProjectDifficulty, project.FieldDifficulty),
)
