package mentorhub

import (
	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentorship"
	"github.com/kailas-cloud/mentorhub/internal/domain/profile"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	"github.com/kailas-cloud/mentorhub/internal/domain/student"
	"github.com/kailas-cloud/mentorhub/internal/domain/workspace"
	"github.com/kailas-cloud/mentorhub/internal/seed"
	dashboarduc "github.com/kailas-cloud/mentorhub/internal/usecase/dashboard"
	directoryuc "github.com/kailas-cloud/mentorhub/internal/usecase/directory"
	mentorshipuc "github.com/kailas-cloud/mentorhub/internal/usecase/mentorship"
	profileuc "github.com/kailas-cloud/mentorhub/internal/usecase/profile"
	workspaceuc "github.com/kailas-cloud/mentorhub/internal/usecase/workspace"
)

// Records and views shared with the HTTP API.
type (
	Mentor         = mentor.Mentor
	Project        = project.Project
	Application    = project.Application
	Request        = mentorship.Request
	Draft          = mentorship.Draft
	Status         = mentorship.Status
	Student        = student.Student
	Dashboard      = dashboarduc.View
	MentorListing  = directoryuc.Listing[mentor.Mentor]
	ProjectListing = directoryuc.Listing[project.Project]
	RequestQuery   = mentorshipuc.Query
	RequestListing = mentorshipuc.Listing
	SeedData       = seed.Data
	Task           = workspace.Task
	TaskDraft      = workspace.TaskDraft
	TaskBoard      = workspaceuc.Board
	TeamMember     = workspace.Member
	Profile        = profile.Profile
	ProfileView    = profileuc.View
	ProfileListing = profileuc.Listing
)

// Filters maps a filter name to its raw value. Empty values are unset.
type Filters = filter.Criteria

// Request statuses.
const (
	Pending  = mentorship.Pending
	Accepted = mentorship.Accepted
	Rejected = mentorship.Rejected
)

// Mentor directory filters.
const (
	MentorSearch       = directoryuc.MentorSearch
	MentorSkill        = directoryuc.MentorSkill
	MentorRating       = directoryuc.MentorRating
	MentorExperience   = directoryuc.MentorExperience
	MentorAvailability = directoryuc.MentorAvailability
)

// Project catalog filters.
const (
	ProjectSearch     = directoryuc.ProjectSearch
	ProjectSkill      = directoryuc.ProjectSkill
	ProjectDuration   = directoryuc.ProjectDuration
	ProjectDifficulty = directoryuc.ProjectDifficulty
)

// Dashboard recent project filters.
const (
	DashboardStatus = dashboarduc.ByStatus
	DashboardSearch = dashboarduc.BySearch
)

// Project task board filters.
const (
	TaskStatus   = workspaceuc.ByStatus
	TaskPriority = workspaceuc.ByPriority
	TaskAssignee = workspaceuc.ByAssignee
	TaskSearch   = workspaceuc.BySearch
)

// Profile filters.
const (
	ProfileRole   = profileuc.ByRole
	ProfileSkill  = profileuc.BySkill
	ProfileSearch = profileuc.BySearch
)
