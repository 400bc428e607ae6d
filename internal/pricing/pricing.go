// Package pricing holds the money and weight arithmetic shared by the cart,
// the submission client and the notification email. All amounts are Serbian
// dinars per kilogram; rounding happens only at display time.
package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The shop sells in a single fixed locale. Serbian digit grouping uses a
// period, so 1050 renders as "1.050 RSD".
var rsdPrinter = message.NewPrinter(language.Serbian)

// ParseUnitPrice extracts the numeric magnitude from a display price such as
// "1500 RSD". Every character that is not a digit, comma or period is
// stripped and a decimal comma is normalized to a period before parsing.
// The function is total: malformed catalog data degrades to 0 instead of
// taking the page down.
func ParseUnitPrice(display string) float64 {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := strings.ReplaceAll(b.String(), ",", ".")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}

// LineTotal computes the price of a single cart line. No rounding is applied
// here; totals stay exact until formatted for display.
func LineTotal(grams int, unitPricePerKg float64) float64 {
	return float64(grams) / 1000 * unitPricePerKg
}

// FormatWeight renders a gram quantity the way the storefront shows it:
// below a kilogram as integer grams, otherwise in kilograms with the
// fraction suppressed for exact values.
func FormatWeight(grams int) string {
	if grams >= 1000 {
		if grams%1000 == 0 {
			return strconv.Itoa(grams/1000) + " kg"
		}
		return fmt.Sprintf("%.2f kg", float64(grams)/1000)
	}
	return strconv.Itoa(grams) + " g"
}

// FormatRSD renders a monetary amount in whole dinars with Serbian digit
// grouping. The currency and locale are fixed, not configurable per call.
func FormatRSD(amount float64) string {
	return rsdPrinter.Sprintf("%d RSD", int64(math.Round(amount)))
}

// GramOptions lists the quantities the storefront offers when adding a
// product: 100 g steps up to one kilogram, then whole kilograms up to ten.
func GramOptions() []int {
	options := make([]int, 0, 19)
	for g := 100; g <= 1000; g += 100 {
		options = append(options, g)
	}
	for g := 2000; g <= 10000; g += 1000 {
		options = append(options, g)
	}
	return options
}
