package models

type Role string

const (
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

type User struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password,omitempty" validate:"required,min=6"`
	FirstName   string `json:"first_name" validate:"required,min=2,max=100"`
	LastName    string `json:"last_name" validate:"required,min=2,max=100"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dob"`
	Sex         string `json:"sex"`
	Role        Role   `json:"role" validate:"omitempty,eq=staff|eq=customer"`
	Verified    bool   `json:"verified"`
}

// DisplayName is the name snapshot written into schedule entries.
func (u User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
