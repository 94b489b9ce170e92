package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/tripcrew/internal/domain"
	"github.com/jsamuelsen11/tripcrew/internal/domain/member"
)

const msgRequired = domain.MsgRequired

// MemberRequest describes a member joining a group. ID is optional and is
// generated when empty.
type MemberRequest struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"display_name"`
}

// CreateGroupRequest represents the JSON body for creating a trip group.
type CreateGroupRequest struct {
	Name        string        `json:"name"`
	TargetTotal int64         `json:"target_total"`
	AutoAdjust  bool          `json:"auto_adjust"`
	Founder     MemberRequest `json:"founder"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateGroupRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.TargetTotal <= 0 {
		fields["target_total"] = fmt.Sprintf("must be > 0, got %d", r.TargetTotal)
	}
	if strings.TrimSpace(r.Founder.DisplayName) == "" {
		fields["founder.display_name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// AdmitMemberRequest represents the JSON body for admitting an invited
// member. Status and role default to active and member.
type AdmitMemberRequest struct {
	MemberRequest
	Status string `json:"status,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *AdmitMemberRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.DisplayName) == "" {
		fields["display_name"] = msgRequired
	}
	if r.Status != "" && !member.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	if r.Role != "" && !member.Role(r.Role).IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", r.Role)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ChangeStatusRequest represents the JSON body for a member status change.
// Reason is kept only for dropouts.
type ChangeStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Validate checks that the status is present and known.
func (r *ChangeStatusRequest) Validate() error {
	switch {
	case r.Status == "":
		return domain.NewValidationError("status", msgRequired)
	case !member.Status(r.Status).IsValid():
		return domain.NewValidationError("status", fmt.Sprintf("invalid: %q", r.Status))
	}
	return nil
}

// AmountRequest represents the JSON body for setting a target total or a
// contribution, in minor currency units.
type AmountRequest struct {
	Amount *int64 `json:"amount"`
}

// Validate checks that the amount is present. Range checks belong to the
// ledger.
func (r *AmountRequest) Validate() error {
	if r.Amount == nil {
		return domain.NewValidationError("amount", msgRequired)
	}
	return nil
}

// AutoAdjustRequest represents the JSON body for toggling auto-adjust.
type AutoAdjustRequest struct {
	Enabled *bool `json:"enabled"`
}

// Validate checks that the flag is present.
func (r *AutoAdjustRequest) Validate() error {
	if r.Enabled == nil {
		return domain.NewValidationError("enabled", msgRequired)
	}
	return nil
}
