package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

func orderStore(t *testing.T) *Store[*entity.Order] {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "orders.txt")
	return NewStore[*entity.Order](path, orderCodec{}, logger.Nop())
}

func TestStore_ArchivoAusenteEsColeccionVacia(t *testing.T) {
	st := orderStore(t)
	items, err := st.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_SaveAllCreaElDirectorioPadre(t *testing.T) {
	st := orderStore(t)
	err := st.SaveAll([]*entity.Order{{ID: "o_00001", UserID: "u_1", ProductID: "p_1", OrderedAt: "t"}})
	require.NoError(t, err)

	_, err = os.Stat(st.Path())
	assert.NoError(t, err, "el directorio data/ se crea antes de la primera escritura")
}

func TestStore_RoundTripConservaOrden(t *testing.T) {
	st := orderStore(t)
	in := []*entity.Order{
		{ID: "o_00001", UserID: "u_1", ProductID: "p_1", OrderedAt: "01-01-2025_00:00:00"},
		{ID: "o_00002", UserID: "u_2", ProductID: "p_2", OrderedAt: "02-01-2025_00:00:00"},
		{ID: "o_00003", UserID: "u_1", ProductID: "p_3", OrderedAt: "03-01-2025_00:00:00"},
	}
	require.NoError(t, st.SaveAll(in))

	out, err := st.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, in, out, "LoadAll debe devolver los registros en orden de archivo")
}

// saveAll(loadAll()) no debe cambiar el contenido decodificado del archivo.
func TestStore_GuardarLoCargadoEsIdempotente(t *testing.T) {
	st := orderStore(t)
	in := []*entity.Order{
		{ID: "o_00001", UserID: "u_1", ProductID: "p_1", OrderedAt: "01-01-2025_00:00:00"},
		{ID: "o_00002", UserID: "u_2", ProductID: "p_2", OrderedAt: "02-01-2025_00:00:00"},
	}
	require.NoError(t, st.SaveAll(in))
	first, err := os.ReadFile(st.Path())
	require.NoError(t, err)

	loaded, err := st.LoadAll()
	require.NoError(t, err)
	require.NoError(t, st.SaveAll(loaded))

	second, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestStore_LineasMalasSeSaltanSinAbortar(t *testing.T) {
	st := orderStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(st.Path()), 0o755))
	contenido := `{"order_id":"o_00001","user_id":"u_1","pro_id":"p_1","order_time":"t1"}
esto no es un registro
{"user_id":"u_9","user_name":"intruso","user_password":"x","user_register_time":"t","user_role":"customer","user_email":"a@b.co","user_mobile":"0412345678"}
{"order_id":"o_00002","user_id":"u_2","pro_id":"p_2","order_time":"t2"}
`
	require.NoError(t, os.WriteFile(st.Path(), []byte(contenido), 0o644))

	items, err := st.LoadAll()
	require.NoError(t, err, "las líneas ilegibles nunca abortan la carga")
	require.Len(t, items, 2)
	assert.Equal(t, "o_00001", items[0].ID)
	assert.Equal(t, "o_00002", items[1].ID)
}

func TestStore_ReescrituraCompletaTrunca(t *testing.T) {
	st := orderStore(t)
	require.NoError(t, st.SaveAll([]*entity.Order{
		{ID: "o_00001", UserID: "u_1", ProductID: "p_1", OrderedAt: "t"},
		{ID: "o_00002", UserID: "u_2", ProductID: "p_2", OrderedAt: "t"},
	}))
	require.NoError(t, st.SaveAll([]*entity.Order{
		{ID: "o_00003", UserID: "u_3", ProductID: "p_3", OrderedAt: "t"},
	}))

	items, err := st.LoadAll()
	require.NoError(t, err)
	require.Len(t, items, 1, "cada SaveAll reemplaza el archivo entero")
	assert.Equal(t, "o_00003", items[0].ID)
}
