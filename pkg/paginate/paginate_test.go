package paginate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/pkg/paginate"
)

func nums(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_PrimeraPagina(t *testing.T) {
	p := paginate.Paginate(nums(15), 1, 10)

	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)
	require.Len(t, p.Items, 10)
	assert.Equal(t, 1, p.Items[0])
	assert.Equal(t, 10, p.Items[9])
}

func TestPaginate_UltimaPaginaParcial(t *testing.T) {
	p := paginate.Paginate(nums(15), 2, 10)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)
	require.Len(t, p.Items, 5)
	assert.Equal(t, 11, p.Items[0])
	assert.Equal(t, 15, p.Items[4])
}

func TestPaginate_PaginaExactamenteLlena(t *testing.T) {
	p := paginate.Paginate(nums(20), 2, 10)

	assert.Equal(t, 2, p.TotalPages)
	assert.Len(t, p.Items, 10, "20 elementos caben exactos en 2 páginas")
}

func TestPaginate_FueraDeRangoDevuelvePaginaVacia(t *testing.T) {
	p := paginate.Paginate(nums(15), 3, 10)

	assert.Empty(t, p.Items, "página fuera de rango debe ser vacía, no un error")
	assert.Equal(t, 3, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)

	p = paginate.Paginate(nums(15), 0, 10)
	assert.Empty(t, p.Items)

	p = paginate.Paginate(nums(15), -1, 10)
	assert.Empty(t, p.Items)
}

func TestPaginate_ColeccionVacia(t *testing.T) {
	p := paginate.Paginate([]int{}, 1, 10)

	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.TotalPages, "colección vacía => cero páginas")
}

// La unión de todas las páginas debe reconstruir la secuencia original
// sin huecos ni duplicados.
func TestPaginate_UnionReconstruyeLaColeccion(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 30} {
		items := nums(n)
		first := paginate.Paginate(items, 1, 10)

		var union []int
		for page := 1; page <= first.TotalPages; page++ {
			union = append(union, paginate.Paginate(items, page, 10).Items...)
		}
		assert.Equal(t, items, append([]int{}, union...), "n=%d", n)
	}
}

func TestPaginate_TamanoPorDefecto(t *testing.T) {
	p := paginate.Paginate(nums(12), 1, 0)
	assert.Len(t, p.Items, paginate.DefaultPageSize)
	assert.Equal(t, 2, p.TotalPages)
}
