// Package paginate implementa paginación sin cursores sobre colecciones
// en memoria. Las páginas se recalculan en cada consulta, nunca se cachean.
package paginate

// DefaultPageSize tamaño de página usado por todos los listados.
const DefaultPageSize = 10

// Page es una rebanada acotada de una colección ordenada más sus
// metadatos de posición.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
}

// Paginate devuelve la página pageNumber (base 1) de items.
//
// Política adoptada (las variantes del dominio difieren y aquí se fija una):
//   - colección vacía => TotalPages 0;
//   - pageNumber fuera de [1, TotalPages] => página vacía con el
//     CurrentPage solicitado y el TotalPages real, sin error ni clamping.
//
// Para size <= 0 se usa DefaultPageSize.
func Paginate[T any](items []T, pageNumber, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := (len(items) + size - 1) / size

	if pageNumber < 1 || pageNumber > total {
		return Page[T]{Items: []T{}, CurrentPage: pageNumber, TotalPages: total}
	}

	from := (pageNumber - 1) * size
	to := from + size
	if to > len(items) {
		to = len(items)
	}
	out := make([]T, to-from)
	copy(out, items[from:to])

	return Page[T]{Items: out, CurrentPage: pageNumber, TotalPages: total}
}
