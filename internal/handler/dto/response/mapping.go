package response

import (
	"sncleaning-pricing/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

var errUnexpectedDecimal = errs.New("expected decimal value")

// amountOption renders decimals as fixed two-place strings so that money
// keeps its pence in JSON.
var amountOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errUnexpectedDecimal
				}
				return d.StringFixed(2), nil
			},
		},
	},
}
