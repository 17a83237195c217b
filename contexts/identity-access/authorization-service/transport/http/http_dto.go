package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CheckPermissionRequest struct {
	Permission  string   `json:"permission"`
	Permissions []string `json:"permissions,omitempty"`
	Mode        string   `json:"mode,omitempty"`
}

type CheckPermissionResponse struct {
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	Allowed bool   `json:"allowed"`
}

type UserRoleResponse struct {
	UserID      string   `json:"user_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type AssignRoleRequest struct {
	Role string `json:"role"`
}

type AssignRoleResponse struct {
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	AssignedBy string `json:"assigned_by"`
}
