package repository

import "github.com/caixaforte/comercial-api/internal/domain/entity"

// UsuarioRepository define o porto de persistência para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}
