package request

// CreateUserRequest represents a staff account creation request
type CreateUserRequest struct {
	FirstName string  `json:"first_name" binding:"required,min=2,max=255"`
	LastName  string  `json:"last_name" binding:"omitempty,max=255"`
	Username  string  `json:"username" binding:"required,min=3,max=255"`
	Password  string  `json:"password" binding:"required,min=8"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	RoleName  string  `json:"role_name" binding:"omitempty,oneof=admin staff"`
}

// UpdateUserRolesRequest represents a user role assignment request
type UpdateUserRolesRequest struct {
	RoleIDs []uint `json:"role_ids" binding:"required"`
}
