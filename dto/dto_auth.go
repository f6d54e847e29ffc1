package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublicUser is the user shape returned to clients. The password hash never
// leaves the server. ProfilePic is omitted where the route does not expose
// it (register).
type PublicUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilepic,omitempty"`
}

type AuthResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	User    PublicUser `json:"user"`
}

type CheckAuthResponse struct {
	Success         bool       `json:"success"`
	IsAuthenticated bool       `json:"isAuthenticated"`
	User            PublicUser `json:"user"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"invalid body"`
}
