package rbac_test

import (
	"testing"

	"github.com/PADMANABAN5/hrms/internal/rbac"
	"github.com/PADMANABAN5/hrms/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()

	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc, err := rbac.NewService(enforcer)
	assert.NoError(t, err)
	return svc
}

func TestRBACService_AdminAllowsEverything(t *testing.T) {
	svc := newService(t)

	for _, resource := range []string{"payslip", "employee", "hruser", "leave"} {
		for _, action := range []string{"read", "create", "update", "delete"} {
			allowed, err := svc.Enforce(rbac.RoleAdmin, resource, action)
			assert.NoError(t, err)
			assert.True(t, allowed, "admin should be allowed %s:%s", resource, action)
		}
	}
}

func TestRBACService_HRScope(t *testing.T) {
	svc := newService(t)

	allowed, err := svc.Enforce(rbac.RoleHR, "payslip", "create")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.Enforce(rbac.RoleHR, "hruser", "create")
	assert.NoError(t, err)
	assert.False(t, allowed, "hr must not manage HR accounts")

	allowed, err = svc.Enforce(rbac.RoleHR, "employee", "delete")
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_UnknownRoleDenied(t *testing.T) {
	svc := newService(t)

	allowed, err := svc.Enforce("intern", "payslip", "read")
	assert.NoError(t, err)
	assert.False(t, allowed)
}
