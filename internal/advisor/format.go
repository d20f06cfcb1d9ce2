package advisor

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/BerylCAtieno/agriguru-agent/internal/models"
)

// title turns a table key like "black_cotton" into "Black Cotton". Every
// letter that follows a non-letter is upper-cased, so "semi-arid" becomes
// "Semi-Arid".
func title(key string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range strings.ReplaceAll(key, "_", " ") {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func list(items []string) string {
	return strings.Join(items, ", ")
}

func titledList(items []string) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = title(item)
	}
	return list(out)
}

// doses renders a nutrient schedule as "basal: 50, tillering: 25 (kg/hectare)".
func doses(s models.NutrientSchedule) string {
	parts := make([]string, len(s.Doses))
	for i, d := range s.Doses {
		parts[i] = fmt.Sprintf("%s: %s", d.Stage, num(d.Amount))
	}
	out := list(parts)
	if s.Unit != "" {
		out += fmt.Sprintf(" (%s)", s.Unit)
	}
	return out
}

func harvestWindows(windows []models.SeasonWindow) string {
	parts := make([]string, len(windows))
	for i, w := range windows {
		parts[i] = fmt.Sprintf("%s: %s", w.Season, w.Months)
	}
	return list(parts)
}

func yieldRange(y models.YieldPotential) string {
	return fmt.Sprintf("%s-%s %s", num(y.Average), num(y.High), y.Unit)
}

// writeBullets writes a "**Heading:**" line followed by one bullet per item
// and a blank line.
func writeBullets(b *strings.Builder, heading string, items ...string) {
	fmt.Fprintf(b, "**%s:**\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
	b.WriteString("\n")
}

func writeSoilRecommendations(b *strings.Builder, recs models.SoilRecommendations) {
	for _, rec := range recs {
		fmt.Fprintf(b, "• **%s:** %s\n", title(rec.Soil), list(rec.Crops))
	}
}
