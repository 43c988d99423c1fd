package export

import (
	"net/url"
	"strings"

	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
)

// WhatsAppLink builds a wa.me deep link with a pre-filled text summary, the
// fallback share path when no native share sheet is available.
func WhatsAppLink(countryCode, phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if digits == "" {
		return "https://wa.me/?text=" + url.QueryEscape(text)
	}
	if !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}

// ShareSummary renders the short balance text that accompanies a shared
// statement.
func ShareSummary(shopName string, balance ledgerbook.SignedBalance) string {
	owed := balance.As(ledgerbook.CustomerLiability)

	var b strings.Builder
	b.WriteString(shopName)
	b.WriteString(" - balance summary:\n")
	b.WriteString("Cash: Rs " + money(owed.Cash) + "\n")
	b.WriteString("Gold fine: " + weight(owed.Gold) + " g\n")
	b.WriteString("Silver fine: " + weight(owed.Silver) + " g")
	return b.String()
}
