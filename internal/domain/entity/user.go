package entity

import "time"

// User representa una cuenta de acceso. El email funciona como nombre de usuario.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	IsSuperuser  bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Group agrupación de usuarios (solo lectura desde la API).
type Group struct {
	ID   string
	Name string
}
