package dto

// RegisterUserRequest defines the data needed to create an account.
// Avatar and CoverImage are URLs of already hosted images.
type RegisterUserRequest struct {
	FullName   string `json:"fullName" binding:"required,notblank" example:"Alice Liddell"`
	Email      string `json:"email" binding:"required,notblank,email" example:"alice@example.com"`
	Username   string `json:"username" binding:"required,notblank" example:"alice"`
	Password   string `json:"password" binding:"required,notblank,max=72" example:"correct-horse"`
	Avatar     string `json:"avatar" binding:"omitempty,url"`
	CoverImage string `json:"coverImage" binding:"omitempty,url"`
}

// UpdateAccountRequest defines the profile fields a user may change.
// Empty fields are left untouched.
type UpdateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UpdateAvatarRequest defines the body of PATCH /update-avatar. The image must already be hosted.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,url" example:"https://cdn.example.com/alice.png"`
}
