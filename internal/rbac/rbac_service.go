package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
)

const (
	RoleAdmin = "admin"
	RoleHR    = "hr"
)

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

// defaultPolicies is the static permission matrix. Admin can do everything;
// HR staff run the day-to-day payslip workflow but cannot manage HR accounts.
var defaultPolicies = [][]string{
	{RoleAdmin, "*", "*"},
	{RoleHR, "employee", "read"},
	{RoleHR, "employee", "create"},
	{RoleHR, "employee", "update"},
	{RoleHR, "leave", "read"},
	{RoleHR, "leave", "create"},
	{RoleHR, "leave", "update"},
	{RoleHR, "payslip", "read"},
	{RoleHR, "payslip", "create"},
	{RoleHR, "payslip", "email"},
	{RoleHR, "payslip", "export"},
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	for _, p := range defaultPolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(role, resource, action)
}
