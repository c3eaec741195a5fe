// Package i18n holds the English and Chinese message catalogs of the
// command line.
package i18n

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"tutorlog/internal/core"
)

// Supported lists the catalogs in matching preference order.
var Supported = []language.Tag{language.English, language.Chinese}

var (
	matcher = language.NewMatcher(Supported)
	builder = newBuilder()
)

var currencies = map[language.Tag]string{
	language.English: "$",
	language.Chinese: "¥",
}

// Match picks the supported language closest to the given BCP 47 value.
// Anything unrecognised falls back to English.
func Match(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return Supported[idx]
}

type Catalog struct {
	tag      language.Tag
	printer  *message.Printer
	currency string
}

func New(lang string) *Catalog {
	tag := Match(lang)
	return &Catalog{
		tag:      tag,
		printer:  message.NewPrinter(tag, message.Catalog(builder)),
		currency: currencies[tag],
	}
}

// WithCurrency overrides the language's currency symbol when sym is set.
func (c *Catalog) WithCurrency(sym string) *Catalog {
	if sym != "" {
		c.currency = sym
	}
	return c
}

func (c *Catalog) Tag() language.Tag {
	return c.tag
}

func (c *Catalog) Currency() string {
	return c.currency
}

// T renders the message for key with args.
func (c *Catalog) T(key string, args ...any) string {
	return c.printer.Sprintf(key, args...)
}

// Money formats d with two decimals behind the currency symbol.
func (c *Catalog) Money(d decimal.Decimal) string {
	return c.currency + core.FormatMoney(d)
}

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range english {
		_ = b.SetString(language.English, key, msg)
	}
	for key, msg := range chinese {
		_ = b.SetString(language.Chinese, key, msg)
	}
	return b
}
