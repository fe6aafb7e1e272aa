package model

// Role identifies which dashboard a user sees.
type Role string

const (
	RoleBoss         Role = "BOSS"
	RoleSalesManager Role = "SALES_MANAGER"
	RoleTelecaller   Role = "TELECALLER"
	RoleTechLead     Role = "TECH_LEAD"
)

// User is a logged-in dashboard user.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
