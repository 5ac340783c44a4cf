// Package obfuscate implementa la codificación reversible con la que se
// persisten las claves de usuario. No es criptografía: el relleno
// aleatorio no guarda información y cualquier lector del archivo puede
// revertir el token. Se conserva porque el formato en disco lo exige.
package obfuscate

import (
	"errors"
	"math/rand"
	"strings"
)

const (
	startMarker = "^^"
	endMarker   = "$$"
	alphabet    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrBadToken indica un token sin marcadores o con un cuerpo de longitud
// no múltiplo de 3; Reveal nunca devuelve datos corruptos en ese caso.
var ErrBadToken = errors.New("obfuscate: token con formato inválido")

// Obfuscate codifica secret en un token reversible: genera un relleno
// alfanumérico de longitud 2*len(secret) y alterna dos caracteres de
// relleno con uno del secreto, entre los marcadores ^^ y $$.
// Un secreto vacío produce ^^$$ y revierte a "".
func Obfuscate(secret string) string {
	filler := make([]byte, 2*len(secret))
	for i := range filler {
		filler[i] = alphabet[rand.Intn(len(alphabet))]
	}

	var b strings.Builder
	b.Grow(len(startMarker) + 3*len(secret) + len(endMarker))
	b.WriteString(startMarker)
	for i := 0; i < len(secret); i++ {
		b.WriteByte(filler[2*i])
		b.WriteByte(filler[2*i+1])
		b.WriteByte(secret[i])
	}
	b.WriteString(endMarker)
	return b.String()
}

// Reveal revierte un token producido por Obfuscate leyendo cada tercer
// carácter del cuerpo, empezando en el offset 2.
func Reveal(token string) (string, error) {
	if !strings.HasPrefix(token, startMarker) || !strings.HasSuffix(token, endMarker) {
		return "", ErrBadToken
	}
	core := token[len(startMarker) : len(token)-len(endMarker)]
	if len(core)%3 != 0 {
		return "", ErrBadToken
	}

	var b strings.Builder
	b.Grow(len(core) / 3)
	for i := 2; i < len(core); i += 3 {
		b.WriteByte(core[i])
	}
	return b.String(), nil
}
