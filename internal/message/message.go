// Package message builds the outbound texts khata sends to contacts:
// payment reminders, due notes for the clipboard, and transaction
// history summaries, plus the wa.me deep links that carry them.
package message

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/mmynk/khata/internal/models"
)

// ErrNoTransactions is returned when a history message is requested for
// a person with no transactions.
var ErrNoTransactions = errors.New("no transactions to send")

// historyLimit caps how many entries a history message carries.
const historyLimit = 6

// DefaultCountryCode prefixes digits-only phone numbers in wa.me links.
const DefaultCountryCode = "91"

// Builder renders messages using a country code and a template set.
type Builder struct {
	countryCode string
	templates   Templates
}

// NewBuilder creates a message builder. An empty country code falls
// back to DefaultCountryCode; a nil template set uses the built-in
// wording.
func NewBuilder(countryCode string, templates *Templates) *Builder {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	tpl := DefaultTemplates()
	if templates != nil {
		tpl = tpl.merge(templates)
	}
	return &Builder{countryCode: countryCode, templates: tpl}
}

// Reminder renders the gentle payment reminder for a person's current
// balance. The amount is always shown as a magnitude.
func (b *Builder) Reminder(person *models.Person, shopName string) string {
	return expand(b.templates.Reminder, map[string]string{
		"name":   person.Name,
		"amount": FormatINR(person.Balance.Abs()),
		"shop":   shopName,
	})
}

// DueNote renders the short due text used for copy-to-clipboard.
func (b *Builder) DueNote(person *models.Person) string {
	return expand(b.templates.DueNote, map[string]string{
		"name":        person.Name,
		"amount":      FormatINR(person.Balance.Abs()),
		"description": person.Description,
	})
}

// History renders a summary of the person's most recent transactions.
// transactions must be ordered newest first; only the first
// historyLimit entries are included.
func (b *Builder) History(person *models.Person, transactions []*models.Transaction) (string, error) {
	if len(transactions) == 0 {
		return "", ErrNoTransactions
	}
	if len(transactions) > historyLimit {
		transactions = transactions[:historyLimit]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - Last %d Transactions:\n\n", person.Name, len(transactions))
	for _, entry := range transactions {
		fmt.Fprintf(&sb, "%s: %s - %s %s\n",
			entry.Type.Label(),
			FormatINR(entry.Amount),
			entry.DateTime.Format("02/01/2006"),
			entry.DateTime.Format("03:04 pm"),
		)
	}
	return sb.String(), nil
}

// WhatsAppURL builds the wa.me deep link that opens a chat with the
// given number, prefilled with text.
func (b *Builder) WhatsAppURL(mobileNumber, text string) string {
	return fmt.Sprintf("https://wa.me/%s%s?text=%s",
		b.countryCode, NormalizePhone(mobileNumber), url.QueryEscape(text))
}

// NormalizePhone strips every non-digit character from a phone number.
func NormalizePhone(mobileNumber string) string {
	var sb strings.Builder
	for _, r := range mobileNumber {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// FormatINR renders a decimal amount as Indian rupees ("₹1,234.50").
// Sub-paise precision is rounded, not truncated.
func FormatINR(amount decimal.Decimal) string {
	return money.New(amount.Round(2).Shift(2).IntPart(), money.INR).Display()
}

func expand(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
