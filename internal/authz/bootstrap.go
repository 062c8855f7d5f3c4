package authz

import (
	"fmt"
	"strings"

	"github.com/flightbase-api/internal/constants"
)

// BootstrapRoleHierarchy persists the built-in role chain and one
// capability policy per role. Admin inherits Manager, Manager inherits
// Operator, Operator inherits Viewer. Idempotent.
func (s *Service) BootstrapRoleHierarchy() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	chain := constants.Roles
	for i := 0; i < len(chain)-1; i++ {
		child, err := normalizeRole(chain[i])
		if err != nil {
			return err
		}
		parent, err := normalizeRole(chain[i+1])
		if err != nil {
			return err
		}
		if _, err := s.enforcer.AddNamedGroupingPolicy("g", child, parent); err != nil {
			return fmt.Errorf("link role hierarchy failed: %w", err)
		}
	}

	for _, role := range chain {
		subject, err := normalizeRole(role)
		if err != nil {
			return err
		}
		object := capabilityPrefix + strings.TrimPrefix(subject, rolePrefix)
		if _, err := s.enforcer.AddPolicy(subject, object, actionAccess); err != nil {
			return fmt.Errorf("grant role capability failed: %w", err)
		}
	}

	return nil
}
