package dto

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"janedoe19990502"`
	Password string `json:"password" binding:"required" example:"1999-05-02"`
}

// RefreshTokenRequest represents the refresh payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
}

// CallerResponse describes the authenticated caller
type CallerResponse struct {
	ID        int64  `json:"id" example:"1"`
	Username  string `json:"username" example:"janedoe19990502"`
	FirstName string `json:"firstName" example:"Jane"`
	LastName  string `json:"lastName" example:"Doe"`
	Email     string `json:"email" example:"jane.doe@campus.edu"`
	Role      string `json:"role" example:"STUDENT"`
	ProfileID int64  `json:"profileId,omitempty" example:"20"`
}
