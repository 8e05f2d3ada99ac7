package pokemon

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// StatBarMax is the reference maximum used for stat bars.
	StatBarMax = 150

	kgToLbs      = 2.20462
	metersToFeet = 3.28084
)

var statLabels = map[StatKey]string{
	StatSpecialAttack:  "Sp. Attack",
	StatSpecialDefense: "Sp. Defense",
}

// FormatID renders an id as a zero padded catalogue number, e.g. #025.
func FormatID(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// Capitalize upper-cases the first letter and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Label turns a slug such as "solar-power" into "Solar power".
func Label(slug string) string {
	return Capitalize(strings.ReplaceAll(slug, "-", " "))
}

// FormatWeight renders hectograms as pounds and kilograms, e.g. "13.2lbs (6.0 Kg)".
func FormatWeight(weight int) string {
	kg := float64(weight) / 10
	return fmt.Sprintf("%.1flbs (%.1f Kg)", kg*kgToLbs, kg)
}

// FormatHeight renders decimeters as feet/inches and centimeters, e.g. `1'04" (40cm)`.
func FormatHeight(height int) string {
	meters := float64(height) / 10
	totalFeet := meters * metersToFeet
	feet := math.Floor(totalFeet)
	inches := math.Round((totalFeet - feet) * 12)
	return fmt.Sprintf("%d'%02d\" (%.0fcm)", int(feet), int(inches), meters*100)
}

// StatLabel returns the display label for a stat key.
func StatLabel(key StatKey) string {
	if label, ok := statLabels[key]; ok {
		return label
	}
	return Label(string(key))
}

// StatColor buckets a stat value against max into a traffic-light colour.
func StatColor(value, max int) string {
	if max <= 0 {
		max = StatBarMax
	}
	percentage := float64(value) / float64(max) * 100
	switch {
	case percentage >= 70:
		return "#4CAF50"
	case percentage >= 50:
		return "#8BC34A"
	case percentage >= 30:
		return "#FFC107"
	default:
		return "#FF5722"
	}
}
