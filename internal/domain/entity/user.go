package entity

import "time"

// Role rol de acceso de un usuario. La jerarquía es un orden total:
// super_admin > admin > user. Cada ruta protegida declara el rol mínimo y el
// middleware compara niveles, no strings.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// roleLevels nivel de cada rol; 0 significa rol desconocido.
var roleLevels = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// Valid indica si el rol es uno de los tres conocidos.
func (r Role) Valid() bool {
	return roleLevels[r] > 0
}

// AtLeast indica si el rol alcanza el nivel mínimo requerido. Un rol
// desconocido nunca alcanza ningún nivel.
func (r Role) AtLeast(min Role) bool {
	level := roleLevels[r]
	return level > 0 && level >= roleLevels[min]
}

// User usuario de la API. PasswordHash es un hash bcrypt y jamás se expone en
// respuestas.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
