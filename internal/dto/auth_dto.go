package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `form:"username" validate:"required,min=1"`
	Password string `form:"password" validate:"required,min=1"`
}

type SignupRequest struct {
	FarmName     string `form:"farm_name" validate:"required,min=1,max=120"`
	FarmLocation string `form:"farm_location" validate:"max=200"`
	FullName     string `form:"full_name" validate:"max=120"`
	Username     string `form:"username" validate:"required,min=1,max=150"`
	Password     string `form:"password" validate:"required,min=4"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	FullName *string `json:"full_name"`
	IsAdmin  bool    `json:"is_admin"`
	FarmID   *uint   `json:"farm_id"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // seconds
	User        UserResponse `json:"user"`
}
