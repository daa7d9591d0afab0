package domain

import (
	"fmt"
	"time"
)

// Role determines which operations a user may perform.
type Role string

const (
	RoleRequester     Role = "REQUESTER"
	RoleTechnician    Role = "TECHNICIAN"
	RoleAdministrator Role = "ADMINISTRATOR"
)

// ParseRole validates a role value received from the outside.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleRequester, RoleTechnician, RoleAdministrator:
		return Role(value), nil
	}
	return "", fmt.Errorf("unknown role %q", value)
}

// Department enumerates the organizational units tickets belong to.
type Department string

const (
	DepartmentIT         Department = "IT"
	DepartmentHR         Department = "HR"
	DepartmentFinance    Department = "FINANCE"
	DepartmentSales      Department = "SALES"
	DepartmentProduction Department = "PRODUCTION"
	DepartmentGeneral    Department = "GENERAL"
)

// ParseDepartment validates a department value received from the outside.
func ParseDepartment(value string) (Department, error) {
	switch Department(value) {
	case DepartmentIT, DepartmentHR, DepartmentFinance, DepartmentSales, DepartmentProduction, DepartmentGeneral:
		return Department(value), nil
	}
	return "", fmt.Errorf("unknown department %q", value)
}

// User is the domain model for everyone who signs in: requesters,
// technicians and administrators.
type User struct {
	ID         int64
	Name       string
	Email      string
	Role       Role
	Department Department
	CreatedAt  time.Time
}
