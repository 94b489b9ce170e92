// Package member models trip group members and the registry that enforces
// their lifecycle rules.
package member

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/tripcrew/internal/domain"
)

// Member is a participant in a trip group.
type Member struct {
	ID            string
	DisplayName   string
	Status        Status
	Role          Role
	DropoutReason string
	JoinedAt      time.Time
}

// IsAdmin reports whether the member can act as a group admin. A dropped-out
// admin keeps the role on record but no longer counts.
func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin && m.Status != StatusDroppedOut
}

// Validate checks the rules for admitting a new member. A member can never
// enter a group already dropped out.
func (m *Member) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(m.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(m.DisplayName) == "" {
		fields["display_name"] = domain.MsgRequired
	}
	switch m.Status {
	case StatusActive, StatusInactive:
	case StatusDroppedOut:
		fields["status"] = "new members cannot start dropped_out"
	default:
		fields["status"] = fmt.Sprintf("invalid: %q", m.Status)
	}
	if !m.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", m.Role)
	}
	if m.JoinedAt.IsZero() {
		fields["joined_at"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
