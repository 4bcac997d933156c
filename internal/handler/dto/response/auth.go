package response

import "course-checkout/internal/usecase/commands"

type AuthUser struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type LoginResponse struct {
	Status string   `json:"status"`
	Token  string   `json:"token"`
	User   AuthUser `json:"user"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Status: StatusSuccess,
		Token:  r.Token,
		User:   AuthUser{ID: r.UserID.String(), Role: string(r.Role)},
	}
}
