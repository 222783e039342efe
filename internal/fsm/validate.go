package fsm

import "strconv"

// ParseInt разбирает число и проверяет строгие границы: minVal < v < maxVal.
// Значения, равные границам, отклоняются.
func ParseInt(text string, minVal, maxVal int) (int, bool) {
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	if value <= minVal || value >= maxVal {
		return 0, false
	}
	return value, true
}

// ValidateString проверяет длину строки, границы включительные:
// minLen <= len <= maxLen. Асимметрия с числовыми границами намеренная.
func ValidateString(text string, minLen, maxLen int) (string, bool) {
	if len(text) < minLen || len(text) > maxLen {
		return "", false
	}
	return text, true
}
