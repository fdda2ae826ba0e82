package dto

// LoginRequest is the admin login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@okulsport.app"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// RefreshTokenRequest carries a refresh token to exchange for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse is returned by login and refresh
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// AdminProfileResponse is the authenticated admin's own profile
type AdminProfileResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}
