// Package validate agrupa los predicados de formato para los datos de
// usuario. Son funciones puras de un solo string, sin estado ni I/O.
package validate

import "regexp"

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z_]{5,}$`)
	passwordRe = regexp.MustCompile(`^[A-Za-z0-9]{5,}$`)
	letterRe   = regexp.MustCompile(`[A-Za-z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)
	mobileRe   = regexp.MustCompile(`^(03|04)\d{8}$`)
)

// Username exige al menos 5 caracteres, solo letras ASCII y guion bajo.
func Username(s string) bool {
	return usernameRe.MatchString(s)
}

// Password exige al menos 5 caracteres alfanuméricos (sin puntuación),
// con al menos una letra y al menos un dígito. La clave se valida siempre
// en claro, antes de ofuscar.
func Password(s string) bool {
	return passwordRe.MatchString(s) && letterRe.MatchString(s) && digitRe.MatchString(s)
}

// Email exige la forma local@dominio, con parte local alfanumérica más
// `+_.-` y dominio con al menos un punto y extensión de 2+ letras.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Mobile exige exactamente 10 dígitos con prefijo 03 o 04.
func Mobile(s string) bool {
	return mobileRe.MatchString(s)
}
