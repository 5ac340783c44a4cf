package flatfile

import "math/rand"

// Prefijos y anchos de los IDs generados, según el formato de los
// archivos de datos: u_ + 10 dígitos, p_ + 5 dígitos, o_ + 5 dígitos.
const (
	userIDDigits    = 10
	productIDDigits = 5
	orderIDDigits   = 5
)

// randomID genera prefix seguido de n dígitos aleatorios. La unicidad
// la garantiza el repositorio re-sorteando contra su colección.
func randomID(prefix string, n int) string {
	buf := make([]byte, len(prefix)+n)
	copy(buf, prefix)
	for i := 0; i < n; i++ {
		buf[len(prefix)+i] = byte('0' + rand.Intn(10))
	}
	return string(buf)
}
