package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Profile contiene los campos comunes a todo usuario del sistema.
// Password guarda siempre el token ofuscado, nunca la clave en claro
// después de persistir. RegisteredAt usa el formato DD-MM-YYYY_HH:MM:SS.
type Profile struct {
	ID           string
	Name         string
	Password     string
	RegisteredAt string
	Role         string // admin, customer
}

// User es la suma cerrada {Admin, Customer}. El rol del registro decide
// la variante concreta al decodificar; el consumidor no necesita casts,
// solo un type switch sobre las dos variantes.
type User interface {
	Base() *Profile
	sealed()
}

// Admin usuario con permisos de administración. No lleva datos de contacto.
type Admin struct {
	Profile
}

// Customer usuario cliente con email y móvil de contacto.
type Customer struct {
	Profile
	Email  string
	Mobile string
}

func (a *Admin) Base() *Profile    { return &a.Profile }
func (c *Customer) Base() *Profile { return &c.Profile }

func (a *Admin) sealed()    {}
func (c *Customer) sealed() {}
