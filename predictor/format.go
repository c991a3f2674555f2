package predictor

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Texts shown in the prediction output region.
const (
	MsgSelectAll        = "لطفاً تمام ویژگی‌ها را انتخاب کنید."
	MsgModelUnavailable = "فایل‌های مدل به درستی بارگذاری نشده‌اند."
	msgResultPrefix     = "قیمت پیش‌بینی شده: "
	msgCurrencySuffix   = " تومان"
	msgErrorPrefix      = "خطا در هنگام پیش‌بینی: "
)

var (
	groupPrinter = message.NewPrinter(language.English)
	maxGrouped   = decimal.NewFromInt(math.MaxInt64)
)

// FormatPrice renders a price rounded half-to-even to whole toman, with
// thousands separators.
func FormatPrice(price decimal.Decimal) string {
	rounded := price.RoundBank(0)
	if rounded.Abs().GreaterThan(maxGrouped) {
		return msgResultPrefix + groupDigits(rounded.String()) + msgCurrencySuffix
	}
	return msgResultPrefix + groupPrinter.Sprintf("%d", rounded.IntPart()) + msgCurrencySuffix
}

// groupDigits inserts "," every three digits of an integer string beyond
// the int64 range the printer handles.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatError renders a prediction failure for the user.
func FormatError(err error) string {
	return msgErrorPrefix + err.Error()
}
