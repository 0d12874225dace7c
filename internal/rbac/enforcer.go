package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleMasterAdmin = "master_admin"
	RoleStaff       = "staff"
)

// Role-based policy over admin resources. master_admin bypasses the policy
// table entirely; staff permissions are enumerated below.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == "master_admin" || (r.sub == p.sub && r.obj == p.obj && r.act == p.act)
`

var staffPolicies = [][]string{
	{RoleStaff, "employees", "read"},
	{RoleStaff, "employees", "write"},
	{RoleStaff, "attendance", "read"},
	{RoleStaff, "attendance", "write"},
	{RoleStaff, "holidays", "read"},
	{RoleStaff, "holidays", "write"},
	{RoleStaff, "branches", "read"},
	{RoleStaff, "branches", "write"},
	{RoleStaff, "authcodes", "read"},
	{RoleStaff, "authcodes", "write"},
	{RoleStaff, "payroll", "read"},
	{RoleStaff, "settings", "read"},
}

// NewEnforcer builds the in-memory enforcer. Payroll mutations, admin
// management and settings writes stay master-admin only.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range staffPolicies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	return e, nil
}
