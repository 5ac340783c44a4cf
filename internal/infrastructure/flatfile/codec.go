// Package flatfile implementa la persistencia sobre archivos de texto
// plano: un registro por línea con forma pseudo-JSON, carga completa al
// arrancar y reescritura completa en cada mutación.
package flatfile

import (
	"errors"
	"regexp"
	"strings"
)

// ErrParse señala una línea que no decodifica como el tipo esperado.
// El Store la salta y continúa; nunca aborta la carga completa.
var ErrParse = errors.New("flatfile: línea no parseable")

// Codec serializa un registro a exactamente una línea y la revierte.
// Encode fija el orden de los campos; Decode extrae cada campo por nombre
// sin depender del orden de entrada. Ley de ida y vuelta:
// Decode(Encode(r)) == r, campo por campo, incluido el formato numérico.
type Codec[T any] interface {
	Encode(record T) string
	Decode(line string) (T, error)
}

// fieldRe compila el extractor para un campo: acepta "nombre":"valor" y
// "nombre":numero (los archivos de algunas variantes citan los números).
func fieldRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`"` + name + `"\s*:\s*(?:"([^"]*)"|(-?[0-9]+(?:\.[0-9]+)?))`)
}

// field devuelve el valor del campo y si estaba presente. Distingue una
// cadena vacía legítima de un campo ausente usando los índices de grupo.
func field(re *regexp.Regexp, line string) (string, bool) {
	idx := re.FindStringSubmatchIndex(line)
	if idx == nil {
		return "", false
	}
	if idx[2] >= 0 {
		return line[idx[2]:idx[3]], true
	}
	return line[idx[4]:idx[5]], true
}

// braced valida la forma exterior de la línea: un único par de llaves.
func braced(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, "{") && strings.HasSuffix(line, "}")
}

// quote escapa el mínimo necesario para que el valor no rompa la línea.
// Los datos del dominio no contienen comillas ni saltos de línea, pero un
// valor hostil no debe corromper el archivo completo.
func quote(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, `"`, "'")
	return `"` + s + `"`
}
