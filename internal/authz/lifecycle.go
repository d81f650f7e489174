package authz

import (
	"fmt"

	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
)

// NGOTransition checks a status change requested by a platform admin.
// pending is the only source state; approved and rejected are terminal,
// including the reverse paths between them.
func NGOTransition(from, to model.NGOStatus) error {
	if to != model.NGOStatusApproved && to != model.NGOStatusRejected {
		return fmt.Errorf("ngo status %q is not a valid target: %w", to, domain.ErrInvalidStateTransition)
	}
	if from != model.NGOStatusPending {
		return fmt.Errorf("ngo is %s, not pending: %w", from, domain.ErrInvalidStateTransition)
	}
	return nil
}

// ApplicationTransition checks a volunteer application status change.
// Repeating the transition that already happened is reported as a no-op
// rather than an error.
func ApplicationTransition(from, to model.ApplicationStatus) (noop bool, err error) {
	if to != model.ApplicationAccepted && to != model.ApplicationRejected {
		return false, fmt.Errorf("application status %q is not a valid target: %w", to, domain.ErrInvalidStateTransition)
	}
	switch from {
	case model.ApplicationPending:
		return false, nil
	case to:
		return true, nil
	default:
		return false, fmt.Errorf("application is already %s: %w", from, domain.ErrInvalidStateTransition)
	}
}
