package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper
// desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Data  DataConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Admin AdminConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DataConfig ubicación de los archivos de respaldo, uno por entidad.
type DataConfig struct {
	Dir          string
	UsersFile    string
	ProductsFile string
	OrdersFile   string
}

// UsersPath devuelve la ruta completa del archivo de usuarios.
func (c DataConfig) UsersPath() string { return filepath.Join(c.Dir, c.UsersFile) }

// ProductsPath devuelve la ruta completa del archivo de productos.
func (c DataConfig) ProductsPath() string { return filepath.Join(c.Dir, c.ProductsFile) }

// OrdersPath devuelve la ruta completa del archivo de órdenes.
func (c DataConfig) OrdersPath() string { return filepath.Join(c.Dir, c.OrdersFile) }

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig credenciales del admin que se crea en el primer arranque.
type AdminConfig struct {
	Username string
	Password string
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, DATA_DIR, HTTP_PORT, JWT_SECRET, ADMIN_USERNAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "tienda-api"),
		},
		Data: DataConfig{
			Dir:          getString(v, "DATA_DIR", "data"),
			UsersFile:    getString(v, "DATA_USERS_FILE", "users.txt"),
			ProductsFile: getString(v, "DATA_PRODUCTS_FILE", "products.txt"),
			OrdersFile:   getString(v, "DATA_ORDERS_FILE", "orders.txt"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "tienda-api"),
		},
		Admin: AdminConfig{
			Username: getString(v, "ADMIN_USERNAME", "admin_root"),
			Password: getString(v, "ADMIN_PASSWORD", "admin123"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
