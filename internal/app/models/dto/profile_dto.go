package dto

// CreateProfileRequest creates a lecturer or student profile together with
// its identity. The username and initial password are derived from the name
// and date of birth, never supplied by the caller.
type CreateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required" example:"Jane"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	Email     string `json:"email" binding:"required" example:"jane.doe@campus.edu"`
	DOB       string `json:"dob" binding:"required" example:"1999-05-02"` // YYYY-MM-DD
}

// UpdateProfileRequest updates profile fields and the linked identity's
// contact fields; omitted fields keep their current values.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" example:"Jane"`
	LastName  *string `json:"lastName,omitempty" example:"Doe"`
	Email     *string `json:"email,omitempty" example:"jane.doe@campus.edu"`
	DOB       *string `json:"dob,omitempty" example:"1999-05-02"`
}

// ProfileResponse flattens a profile and its linked identity
type ProfileResponse struct {
	ID        int64  `json:"id" example:"1"`
	Username  string `json:"username" example:"janedoe19990502"`
	FirstName string `json:"firstName" example:"Jane"`
	LastName  string `json:"lastName" example:"Doe"`
	Email     string `json:"email" example:"jane.doe@campus.edu"`
	DOB       string `json:"dob" example:"1999-05-02"`
	Role      string `json:"role" example:"STUDENT"`
}

// UpdateIdentityRequest updates an identity's contact fields (admin only)
type UpdateIdentityRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
}
