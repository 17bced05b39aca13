package domain

import "github.com/shopspring/decimal"

// 结算口径：满 4999 免运费，否则运费 499；税率 7%
var (
	freeShippingThreshold = decimal.NewFromInt(4999)
	shippingFee           = decimal.NewFromInt(499)
	taxRate               = decimal.NewFromFloat(0.07)
)

// PricedLine 参与结算的一行（单价与数量）
type PricedLine struct {
	Price    float64
	Quantity int
}

// Summary 购物车结算汇总
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Summarize 用 decimal 计算小计、运费、税额与总价，避免浮点累积误差
func Summarize(lines []PricedLine) Summary {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	shipping := shippingFee
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(shipping).Add(tax)

	return Summary{
		Subtotal: subtotal.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
