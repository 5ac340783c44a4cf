package flatfile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

var (
	reOrderID     = fieldRe("order_id")
	reOrderUser   = fieldRe("user_id")
	reOrderPro    = fieldRe("pro_id")
	reOrderTime   = fieldRe("order_time")
	reUserNameMrk = fieldRe("user_name")
)

// orderCodec serializa órdenes. Una línea de usuario también trae
// user_id, así que se descarta explícitamente si parece un usuario.
type orderCodec struct{}

func (orderCodec) Encode(o *entity.Order) string {
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(`"order_id":` + quote(o.ID))
	b.WriteString(`,"user_id":` + quote(o.UserID))
	b.WriteString(`,"pro_id":` + quote(o.ProductID))
	b.WriteString(`,"order_time":` + quote(o.OrderedAt))
	b.WriteString("}")
	return b.String()
}

func (orderCodec) Decode(line string) (*entity.Order, error) {
	if !braced(line) {
		return nil, fmt.Errorf("%w: sin llaves delimitadoras", ErrParse)
	}
	if _, ok := field(reUserNameMrk, line); ok {
		return nil, fmt.Errorf("%w: registro de usuario en archivo de órdenes", ErrParse)
	}

	o := &entity.Order{}
	for _, f := range []struct {
		re   *regexp.Regexp
		dst  *string
		name string
	}{
		{reOrderID, &o.ID, "order_id"},
		{reOrderUser, &o.UserID, "user_id"},
		{reOrderPro, &o.ProductID, "pro_id"},
		{reOrderTime, &o.OrderedAt, "order_time"},
	} {
		v, ok := field(f.re, line)
		if !ok {
			return nil, fmt.Errorf("%w: falta el campo %q", ErrParse, f.name)
		}
		*f.dst = v
	}
	return o, nil
}
