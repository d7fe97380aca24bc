package mentorhub

import (
	"context"
	"fmt"
	"time"
)

// Mentors filters the mentor directory.
func (c *Client) Mentors(ctx context.Context, f Filters) (_ MentorListing, err error) {
	start := time.Now()
	defer func() { c.obs.observe("mentors.list", start, err) }()

	res, err := c.directory.ListMentors(ctx, f)
	if err != nil {
		return MentorListing{}, fmt.Errorf("list mentors: %w", err)
	}
	return res, nil
}

// Mentor retrieves a mentor by ID.
func (c *Client) Mentor(ctx context.Context, id int) (_ Mentor, err error) {
	start := time.Now()
	defer func() { c.obs.observe("mentors.get", start, err) }()

	m, err := c.directory.GetMentor(ctx, id)
	if err != nil {
		return Mentor{}, fmt.Errorf("get mentor %d: %w", id, err)
	}
	return m, nil
}

// Projects filters the project catalog.
func (c *Client) Projects(ctx context.Context, f Filters) (_ ProjectListing, err error) {
	start := time.Now()
	defer func() { c.obs.observe("projects.list", start, err) }()

	res, err := c.directory.ListProjects(ctx, f)
	if err != nil {
		return ProjectListing{}, fmt.Errorf("list projects: %w", err)
	}
	return res, nil
}

// Project retrieves a project by ID.
func (c *Client) Project(ctx context.Context, id int) (_ Project, err error) {
	start := time.Now()
	defer func() { c.obs.observe("projects.get", start, err) }()

	p, err := c.directory.GetProject(ctx, id)
	if err != nil {
		return Project{}, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}

// Apply submits an application to a project.
func (c *Client) Apply(ctx context.Context, projectID int, app Application) (_ Application, err error) {
	start := time.Now()
	defer func() { c.obs.observe("projects.apply", start, err) }()

	saved, err := c.directory.ApplyToProject(ctx, projectID, app)
	if err != nil {
		return Application{}, fmt.Errorf("apply to project %d: %w", projectID, err)
	}
	return saved, nil
}

// Applications lists the applications submitted to a project.
func (c *Client) Applications(ctx context.Context, projectID int) (_ []Application, err error) {
	start := time.Now()
	defer func() { c.obs.observe("projects.applications", start, err) }()

	apps, err := c.directory.Applications(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list applications of project %d: %w", projectID, err)
	}
	return apps, nil
}

// Withdraw removes a student's application from a project.
func (c *Client) Withdraw(ctx context.Context, projectID int, email string) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("projects.withdraw", start, err) }()

	if err = c.directory.WithdrawApplication(ctx, projectID, email); err != nil {
		return fmt.Errorf("withdraw from project %d: %w", projectID, err)
	}
	return nil
}

// Requests lists mentorship requests with per-status counts.
func (c *Client) Requests(ctx context.Context, q RequestQuery) (_ RequestListing, err error) {
	start := time.Now()
	defer func() { c.obs.observe("requests.list", start, err) }()

	res, err := c.mentorship.List(ctx, q)
	if err != nil {
		return RequestListing{}, fmt.Errorf("list requests: %w", err)
	}
	return res, nil
}

// RequestMentorship creates a pending request to a mentor.
func (c *Client) RequestMentorship(ctx context.Context, mentorID int, d Draft) (_ Request, err error) {
	start := time.Now()
	defer func() { c.obs.observe("requests.create", start, err) }()

	req, err := c.mentorship.Create(ctx, mentorID, d)
	if err != nil {
		return Request{}, fmt.Errorf("request mentor %d: %w", mentorID, err)
	}
	return req, nil
}

// Decide accepts or rejects a pending request.
func (c *Client) Decide(ctx context.Context, id string, action Status) (_ Request, err error) {
	start := time.Now()
	defer func() { c.obs.observe("requests.decide", start, err) }()

	req, err := c.mentorship.Decide(ctx, id, action)
	if err != nil {
		return Request{}, fmt.Errorf("decide request %s: %w", id, err)
	}
	return req, nil
}

// Dashboard returns a student's dashboard with filtered recent projects.
// Filter keys other than DashboardStatus and DashboardSearch are rejected
// with ErrInvalidCriteria.
func (c *Client) Dashboard(ctx context.Context, studentID int, f Filters) (_ Dashboard, err error) {
	start := time.Now()
	defer func() { c.obs.observe("dashboard.get", start, err) }()

	v, err := c.dashboard.Get(ctx, studentID, f)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard of student %d: %w", studentID, err)
	}
	return v, nil
}

// Tasks filters the task board of a project.
func (c *Client) Tasks(ctx context.Context, projectID int, f Filters) (_ TaskBoard, err error) {
	start := time.Now()
	defer func() { c.obs.observe("tasks.list", start, err) }()

	b, err := c.workspace.Tasks(ctx, projectID, f)
	if err != nil {
		return TaskBoard{}, fmt.Errorf("tasks of project %d: %w", projectID, err)
	}
	return b, nil
}

// CreateTask adds a task for a team member of a project.
func (c *Client) CreateTask(ctx context.Context, projectID int, d TaskDraft) (_ Task, err error) {
	start := time.Now()
	defer func() { c.obs.observe("tasks.create", start, err) }()

	t, err := c.workspace.CreateTask(ctx, projectID, d)
	if err != nil {
		return Task{}, fmt.Errorf("create task in project %d: %w", projectID, err)
	}
	return t, nil
}

// Team lists the students working on a project.
func (c *Client) Team(ctx context.Context, projectID int) (_ []TeamMember, err error) {
	start := time.Now()
	defer func() { c.obs.observe("team.list", start, err) }()

	team, err := c.workspace.Team(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("team of project %d: %w", projectID, err)
	}
	return team, nil
}

// Profiles filters student and mentor profiles.
func (c *Client) Profiles(ctx context.Context, f Filters) (_ ProfileListing, err error) {
	start := time.Now()
	defer func() { c.obs.observe("profiles.list", start, err) }()

	res, err := c.profiles.List(ctx, f)
	if err != nil {
		return ProfileListing{}, fmt.Errorf("list profiles: %w", err)
	}
	return res, nil
}

// Profile returns a profile with its review rating and, for students, a
// learning plan summary.
func (c *Client) Profile(ctx context.Context, id int) (_ ProfileView, err error) {
	start := time.Now()
	defer func() { c.obs.observe("profiles.get", start, err) }()

	v, err := c.profiles.Get(ctx, id)
	if err != nil {
		return ProfileView{}, fmt.Errorf("get profile %d: %w", id, err)
	}
	return v, nil
}
