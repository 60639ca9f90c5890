package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginFailureResponse is the reason-coded rejection contract: clients can
// tell "bad password" from "role removed" without parsing messages.
type loginFailureResponse struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type userResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
	// Pages is the role's visible page list, for client-side navigation only.
	Pages []string `json:"pages"`
}

type registerResponse struct {
	User userResponse `json:"user"`
}

type meResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Level       int      `json:"level,omitempty"`
	Permissions []string `json:"permissions"`
	Pages       []string `json:"pages"`
	AdminTier   bool     `json:"admin_tier"`
}
