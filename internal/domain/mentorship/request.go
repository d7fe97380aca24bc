// Package mentorship defines requests students send to mentors.
package mentorship

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/record/field"
)

// Status is the lifecycle state of a request.
type Status string

// Request statuses.
const (
	Pending  Status = "pending"
	Accepted Status = "accepted"
	Rejected Status = "rejected"
)

// Statuses lists every status in tab order.
var Statuses = []Status{Pending, Accepted, Rejected}

// ParseStatus validates a raw status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	switch s {
	case Pending, Accepted, Rejected:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidStatus, raw)
	}
}

// Decide returns the status that follows an action. Only pending requests can be
// decided, and only as accepted or rejected.
func (s Status) Decide(action Status) (Status, error) {
	if action != Accepted && action != Rejected {
		return "", fmt.Errorf("%w: action %q", domain.ErrInvalidStatus, action)
	}
	if s != Pending {
		return "", domain.NewTransitionError(string(s), string(action))
	}
	return action, nil
}

// Field names of the request schema.
const (
	FieldStatus   = "status"
	FieldMentorID = "mentor_id"
	FieldSkills   = "skills"
	FieldStudent  = "student_name"
	FieldMessage  = "message"
)

// Request is a student's request for mentorship.
type Request struct {
	ID           string    `json:"id" yaml:"id"`
	MentorID     int       `json:"mentor_id" yaml:"mentor_id" validate:"required,gt=0"`
	StudentName  string    `json:"student_name" yaml:"student_name" validate:"required"`
	StudentEmail string    `json:"student_email" yaml:"student_email" validate:"required,email"`
	Message      string    `json:"message" yaml:"message" validate:"max=2000"`
	Skills       []string  `json:"skills" yaml:"skills" validate:"dive,required"`
	Status       Status    `json:"status" yaml:"status" validate:"oneof=pending accepted rejected"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// Draft is the caller-supplied part of a new request.
type Draft struct {
	StudentName  string   `json:"student_name" validate:"required"`
	StudentEmail string   `json:"student_email" validate:"required,email"`
	Message      string   `json:"message" validate:"max=2000"`
	Skills       []string `json:"skills" validate:"dive,required"`
}

// Schema exposes the filterable request fields.
var Schema = field.MustSchema(
	field.TextOf(FieldStatus, func(r Request) string { return string(r.Status) }),
	field.TextOf(FieldMentorID, func(r Request) string { return strconv.Itoa(r.MentorID) }),
	field.ListOf(FieldSkills, func(r Request) []string { return r.Skills }),
	field.TextOf(FieldStudent, func(r Request) string { return r.StudentName }),
	field.TextOf(FieldMessage, func(r Request) string { return r.Message }),
)
