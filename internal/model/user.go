package model

type UserRole string

const (
	Employee UserRole = "employee"
	Company  UserRole = "company"
	Admin    UserRole = "admin"
)

// TenantScope 报表及作业查询的租户边界，作业记录不会跨公司
type TenantScope struct {
	CompanyID string `json:"companyId"`
}
