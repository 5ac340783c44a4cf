package dto

// RegisterRequest entrada para registrar un cliente.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token de sesión más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario. La clave nunca viaja en respuestas,
// ni en claro ni ofuscada. Email y Mobile solo se emiten para clientes.
type UserResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registered_at"`
	Email        string `json:"email,omitempty"`
	Mobile       string `json:"mobile,omitempty"`
}

// UpdateProfileRequest entrada para actualizar un atributo del perfil.
// Attribute es uno de: username, password, email, mobile.
type UpdateProfileRequest struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
