package store

import (
	"github.com/mhartveld/sprintdeck/internal/config"
	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/util"
)

// MemberSeed carries the caller-supplied fields of a new team member.
// The display color is always chosen by the store; Avatar defaults to
// initials derived from the name.
type MemberSeed struct {
	Name   string
	Email  string
	Avatar string
}

// MemberPatch is a partial team-member update. Nil fields are left
// unchanged.
type MemberPatch struct {
	Name   *string
	Email  *string
	Avatar *string
	Color  *string
}

// AddTeamMember appends a new member and returns its assigned id. The
// display color is the next entry of the fixed palette, indexed by the
// current member count, so colors cycle predictably once the palette
// is exhausted.
func (s *Store) AddTeamMember(seed MemberSeed) string {
	avatar := seed.Avatar
	if avatar == "" {
		avatar = util.Initials(seed.Name)
	}
	m := models.TeamMember{
		ID:     newID(),
		Name:   seed.Name,
		Email:  seed.Email,
		Avatar: avatar,
		Color:  config.MemberPalette[len(s.members)%len(config.MemberPalette)],
	}
	s.members = append(s.members, m)
	return m.ID
}

// UpdateTeamMember merges the patch into the matching member. No-op if
// the id is unknown.
func (s *Store) UpdateTeamMember(id string, patch MemberPatch) {
	for i := range s.members {
		if s.members[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.members[i].Name = *patch.Name
		}
		if patch.Email != nil {
			s.members[i].Email = *patch.Email
		}
		if patch.Avatar != nil {
			s.members[i].Avatar = *patch.Avatar
		}
		if patch.Color != nil {
			s.members[i].Color = *patch.Color
		}
		return
	}
}

// RemoveTeamMember deletes the member and strips its id from every
// task's assignee list, so no task ever holds a dangling reference.
func (s *Store) RemoveTeamMember(id string) {
	for i, m := range s.members {
		if m.ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			break
		}
	}
	for i := range s.tasks {
		s.tasks[i].Assignees = stripAssignee(s.tasks[i].Assignees, id)
	}
}

// stripAssignee removes every occurrence of id. Seeded tasks may carry
// duplicate assignee ids, so a single-pass delete is not enough.
func stripAssignee(assignees []string, id string) []string {
	out := assignees[:0]
	for _, a := range assignees {
		if a != id {
			out = append(out, a)
		}
	}
	return out
}

// AssignMember adds the member to the task's assignee set. Idempotent:
// an already-assigned member is not duplicated. No-op if the task id
// is unknown.
func (s *Store) AssignMember(taskID, memberID string) {
	t := s.findTask(taskID)
	if t == nil {
		return
	}
	for _, a := range t.Assignees {
		if a == memberID {
			return
		}
	}
	t.Assignees = append(t.Assignees, memberID)
}

// UnassignMember removes the member from the task's assignee set.
// No-op when either id is unknown.
func (s *Store) UnassignMember(taskID, memberID string) {
	t := s.findTask(taskID)
	if t == nil {
		return
	}
	t.Assignees = stripAssignee(t.Assignees, memberID)
}
