package user

type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=6,max=100" example:"password123"`
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=6,max=100" example:"password123"`
	Pseudo   string `json:"pseudo" binding:"required,notblank,min=2,max=100" example:"jane"`
}

// PublicUser is the user shape exposed over the API, without secrets.
type PublicUser struct {
	ID     string `json:"id" example:"5d2b8c1e-7f3a-4e6b-9c0d-1a2b3c4d5e6f"`
	Email  string `json:"email" example:"jane@example.com"`
	Pseudo string `json:"pseudo" example:"jane"`
	Role   Role   `json:"role" example:"USER"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:     u.ID,
		Email:  u.Email,
		Pseudo: u.Pseudo,
		Role:   u.Role,
	}
}

type AccessTokenDTO struct {
	AccessToken string `json:"accessToken"`
}
