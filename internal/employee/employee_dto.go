package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	EmployeeNumber   string           `json:"employee_number"`
	FirstName        string           `json:"first_name" binding:"required"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email" binding:"required,email"`
	JobTitle         string           `json:"job_title"`
	Department       string           `json:"department"`
	EmploymentStatus string           `json:"employment_status" binding:"omitempty,oneof=active probation on_leave resigned terminated"`
	EmploymentType   string           `json:"employment_type" binding:"omitempty,oneof=full_time part_time contract intern"`
	MonthlySalary    *decimal.Decimal `json:"monthly_salary"`
	JoinDate         string           `json:"join_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	EmployeeNumber   string           `json:"employee_number" binding:"required"`
	FirstName        string           `json:"first_name" binding:"required"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email" binding:"required,email"`
	JobTitle         string           `json:"job_title"`
	Department       string           `json:"department"`
	EmploymentStatus string           `json:"employment_status" binding:"required,oneof=active probation on_leave resigned terminated"`
	EmploymentType   string           `json:"employment_type" binding:"required,oneof=full_time part_time contract intern"`
	MonthlySalary    *decimal.Decimal `json:"monthly_salary"`
	JoinDate         string           `json:"join_date" binding:"required"`
}

type EmployeeResponse struct {
	ID               string           `json:"id"`
	CompanyID        string           `json:"company_id"`
	EmployeeNumber   string           `json:"employee_number"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	FullName         string           `json:"full_name"`
	Email            string           `json:"email,omitempty"`
	JobTitle         string           `json:"job_title,omitempty"`
	Department       string           `json:"department,omitempty"`
	EmploymentStatus string           `json:"employment_status,omitempty"`
	EmploymentType   string           `json:"employment_type,omitempty"`
	MonthlySalary    *decimal.Decimal `json:"monthly_salary"`
	JoinDate         string           `json:"join_date,omitempty"`
}

type ListEmployeesRequest struct {
	Search   string `form:"q"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=name email employee_number department join_date"`
	SortDir  string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}
