package domain

// KeyPrefix namespaces every key the service writes.
const KeyPrefix = "mentorhub:"

// Collection keys.
const (
	MentorsKey    = KeyPrefix + "mentors"
	ProjectsKey   = KeyPrefix + "projects"
	RequestsKey   = KeyPrefix + "requests"
	StudentsKey   = KeyPrefix + "students"
	WorkspacesKey = KeyPrefix + "workspaces"
	ProfilesKey   = KeyPrefix + "profiles"
)
