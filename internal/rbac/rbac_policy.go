package rbac

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleFinance  = "finance"
	RoleEmployee = "employee"
)

const (
	ResourceEmployee = "employee"
	ResourceSalary   = "salary"
	ResourcePayslip  = "payslip"
	ResourcePayroll  = "payroll"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionSync   = "sync"
	ActionIssue  = "issue"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// defaultPolicies grants each role its permissions. Admin inherits hr and
// finance through roleInheritance.
var defaultPolicies = [][]string{
	{RoleEmployee, ResourcePayslip, ActionRead},

	{RoleHR, ResourceEmployee, ActionRead},
	{RoleHR, ResourceEmployee, ActionCreate},
	{RoleHR, ResourceEmployee, ActionUpdate},
	{RoleHR, ResourceEmployee, ActionDelete},
	{RoleHR, ResourceSalary, ActionRead},
	{RoleHR, ResourcePayroll, ActionRead},

	{RoleFinance, ResourceEmployee, ActionRead},
	{RoleFinance, ResourceSalary, ActionRead},
	{RoleFinance, ResourceSalary, ActionUpdate},
	{RoleFinance, ResourceSalary, ActionSync},
	{RoleFinance, ResourcePayslip, ActionIssue},
	{RoleFinance, ResourcePayroll, ActionRead},
}

var roleInheritance = [][]string{
	{RoleHR, RoleEmployee},
	{RoleFinance, RoleEmployee},
	{RoleAdmin, RoleHR},
	{RoleAdmin, RoleFinance},
}
