package dto

// RegisterRequest entrada do registro de cliente com credenciais.
// A senha exige minúscula, maiúscula e dígito (tag "password" registrada
// no validador HTTP).
type RegisterRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,password"`
	Phone     string `json:"phone" validate:"omitempty,min=8,max=20"`
	CPF       string `json:"cpf" validate:"omitempty,min=11,max=14"`
	Address   string `json:"address" validate:"omitempty,max=200"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ChangePasswordRequest entrada da troca de senha (rota protegida).
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,password"`
}

// ResetPasswordRequest entrada do reset de senha.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthResponse saída de login/registro: cliente sem senha + token bearer.
type AuthResponse struct {
	Customer  CustomerResponse `json:"customer"`
	Token     string           `json:"token"`
	ExpiresIn string           `json:"expiresIn"`
}
