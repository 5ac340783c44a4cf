package flatfile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// Campos en disco de un usuario. El orden de Encode es fijo; Decode los
// busca por nombre, así que el orden de entrada no importa.
var (
	reUserID       = fieldRe("user_id")
	reUserName     = fieldRe("user_name")
	reUserPassword = fieldRe("user_password")
	reUserRegTime  = fieldRe("user_register_time")
	reUserRole     = fieldRe("user_role")
	reUserEmail    = fieldRe("user_email")
	reUserMobile   = fieldRe("user_mobile")

	// Marcas de registros ajenos: algunas variantes comparten archivo
	// entre entidades y un pedido o producto puede aparecer mezclado.
	reOrderMark   = fieldRe("order_id")
	reProductMark = fieldRe("pro_id")
)

// userCodec codifica la suma Admin|Customer. El rol del registro decide
// la variante al decodificar y qué campos extra son obligatorios.
type userCodec struct{}

func (userCodec) Encode(u entity.User) string {
	var b strings.Builder
	p := u.Base()
	b.WriteString("{")
	b.WriteString(`"user_id":` + quote(p.ID))
	b.WriteString(`,"user_name":` + quote(p.Name))
	b.WriteString(`,"user_password":` + quote(p.Password))
	b.WriteString(`,"user_register_time":` + quote(p.RegisteredAt))
	b.WriteString(`,"user_role":` + quote(p.Role))
	if c, ok := u.(*entity.Customer); ok {
		b.WriteString(`,"user_email":` + quote(c.Email))
		b.WriteString(`,"user_mobile":` + quote(c.Mobile))
	}
	b.WriteString("}")
	return b.String()
}

func (userCodec) Decode(line string) (entity.User, error) {
	if !braced(line) {
		return nil, fmt.Errorf("%w: sin llaves delimitadoras", ErrParse)
	}
	if _, ok := field(reOrderMark, line); ok {
		return nil, fmt.Errorf("%w: registro de orden en archivo de usuarios", ErrParse)
	}
	if _, ok := field(reProductMark, line); ok {
		return nil, fmt.Errorf("%w: registro de producto en archivo de usuarios", ErrParse)
	}

	p := entity.Profile{}
	for _, f := range []struct {
		re   *regexp.Regexp
		dst  *string
		name string
	}{
		{reUserID, &p.ID, "user_id"},
		{reUserName, &p.Name, "user_name"},
		{reUserPassword, &p.Password, "user_password"},
		{reUserRegTime, &p.RegisteredAt, "user_register_time"},
		{reUserRole, &p.Role, "user_role"},
	} {
		v, ok := field(f.re, line)
		if !ok {
			return nil, fmt.Errorf("%w: falta el campo %q", ErrParse, f.name)
		}
		*f.dst = v
	}

	switch p.Role {
	case entity.RoleAdmin:
		return &entity.Admin{Profile: p}, nil
	case entity.RoleCustomer:
		email, ok := field(reUserEmail, line)
		if !ok {
			return nil, fmt.Errorf("%w: falta el campo %q", ErrParse, "user_email")
		}
		mobile, ok := field(reUserMobile, line)
		if !ok {
			return nil, fmt.Errorf("%w: falta el campo %q", ErrParse, "user_mobile")
		}
		return &entity.Customer{Profile: p, Email: email, Mobile: mobile}, nil
	default:
		return nil, fmt.Errorf("%w: rol desconocido %q", ErrParse, p.Role)
	}
}
