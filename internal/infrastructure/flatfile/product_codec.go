package flatfile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

var (
	reProID       = fieldRe("pro_id")
	reProModel    = fieldRe("pro_model")
	reProCategory = fieldRe("pro_category")
	reProName     = fieldRe("pro_name")
	reProCurrent  = fieldRe("pro_current_price")
	reProRaw      = fieldRe("pro_raw_price")
	reProDiscount = fieldRe("pro_discount")
	reProLikes    = fieldRe("pro_likes_count")
)

// productCodec serializa productos. Los precios se escriben como
// numerales sin comillas y siempre con 2 decimales; el contador de likes
// como entero. Decode acepta también números citados de archivos viejos.
type productCodec struct{}

func (productCodec) Encode(p *entity.Product) string {
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(`"pro_id":` + quote(p.ID))
	b.WriteString(`,"pro_model":` + quote(p.Model))
	b.WriteString(`,"pro_category":` + quote(p.Category))
	b.WriteString(`,"pro_name":` + quote(p.Name))
	b.WriteString(`,"pro_current_price":` + p.CurrentPrice.StringFixed(2))
	b.WriteString(`,"pro_raw_price":` + p.RawPrice.StringFixed(2))
	b.WriteString(`,"pro_discount":` + p.Discount.StringFixed(2))
	b.WriteString(`,"pro_likes_count":` + strconv.Itoa(p.LikesCount))
	b.WriteString("}")
	return b.String()
}

func (productCodec) Decode(line string) (*entity.Product, error) {
	if !braced(line) {
		return nil, fmt.Errorf("%w: sin llaves delimitadoras", ErrParse)
	}

	p := &entity.Product{}
	strs := []struct {
		re   *regexp.Regexp
		dst  *string
		name string
	}{
		{reProID, &p.ID, "pro_id"},
		{reProModel, &p.Model, "pro_model"},
		{reProCategory, &p.Category, "pro_category"},
		{reProName, &p.Name, "pro_name"},
	}
	for _, f := range strs {
		v, ok := field(f.re, line)
		if !ok {
			return nil, fmt.Errorf("%w: falta el campo %q", ErrParse, f.name)
		}
		*f.dst = v
	}

	prices := []struct {
		re   *regexp.Regexp
		dst  *decimal.Decimal
		name string
	}{
		{reProCurrent, &p.CurrentPrice, "pro_current_price"},
		{reProRaw, &p.RawPrice, "pro_raw_price"},
		{reProDiscount, &p.Discount, "pro_discount"},
	}
	for _, f := range prices {
		v, ok := field(f.re, line)
		if !ok {
			return nil, fmt.Errorf("%w: falta el campo %q", ErrParse, f.name)
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: campo %q no numérico: %v", ErrParse, f.name, err)
		}
		*f.dst = d
	}

	likes, ok := field(reProLikes, line)
	if !ok {
		return nil, fmt.Errorf("%w: falta el campo %q", ErrParse, "pro_likes_count")
	}
	n, err := strconv.Atoi(likes)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: campo %q inválido", ErrParse, "pro_likes_count")
	}
	p.LikesCount = n

	return p, nil
}
