package dto

// RegisterRequest entrada para registro de usuário.
type RegisterRequest struct {
	Nome   string `json:"nome"`
	Email  string `json:"email" validate:"required,email"`
	Senha  string `json:"senha" validate:"required,min=6"`
	Perfil string `json:"perfil" validate:"omitempty,oneof=admin vendedor"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// UsuarioResponse saída de um usuário (sem hash de senha).
type UsuarioResponse struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
	Status string `json:"status"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
