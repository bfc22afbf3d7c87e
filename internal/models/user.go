package models

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type LoginCredentials struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"password123"`
}

type RegisterData struct {
	Name     string `json:"name" example:"Maria Silva"`
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"password123"`
}

// AuthResponse is what the upstream API returns on a successful login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
