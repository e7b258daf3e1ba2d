// Package utm builds marketing tracking links. It resolves the generator
// input into a single value per UTM parameter and serializes the result
// onto a base URL. The package performs no I/O.
package utm

import (
	"fmt"
	"strings"
	"time"
)

// localizedMonths are the long month names produced by the generator UI locale.
var localizedMonths = [12]string{
	"январь",
	"февраль",
	"март",
	"апрель",
	"май",
	"июнь",
	"июль",
	"август",
	"сентябрь",
	"октябрь",
	"ноябрь",
	"декабрь",
}

var monthTranslations = map[string]string{
	"январь":   "january",
	"февраль":  "february",
	"март":     "march",
	"апрель":   "april",
	"май":      "may",
	"июнь":     "june",
	"июль":     "july",
	"август":   "august",
	"сентябрь": "september",
	"октябрь":  "october",
	"ноябрь":   "november",
	"декабрь":  "december",
}

// TranslateMonth returns the English name for a localized month name,
// or the input unchanged when the name is unknown.
func TranslateMonth(localized string) string {
	if en, ok := monthTranslations[localized]; ok {
		return en
	}
	return localized
}

// FormatCampaignSlug returns the "<month>_<year>" token for a zero-based month,
// e.g. FormatCampaignSlug(6, 2024) == "july_2024". Months outside 0..11 roll
// over into the neighbouring years.
func FormatCampaignSlug(month, year int) string {
	d := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	name := TranslateMonth(localizedMonths[d.Month()-1])

	return fmt.Sprintf("%s_%d", strings.ToLower(name), d.Year())
}
