package analyzer

import (
	"math"
	"strconv"
	"strings"
)

// formatMoney は金額を小数第 2 位までの文字列にします。
// 最短の 10 進表現を基準に、端数 0.5 は絶対値が大きくなる方向へ丸めます (HALF_UP)。
func formatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")
	if len(frac) <= 2 {
		return sign + intPart + "." + frac + strings.Repeat("0", 2-len(frac))
	}

	digits := []byte(intPart + frac[:2])
	if frac[2] >= '5' {
		digits = incrementDigits(digits)
	}
	n := len(digits)
	return sign + string(digits[:n-2]) + "." + string(digits[n-2:])
}

// incrementDigits は 10 進数字列に 1 を加えます。
func incrementDigits(digits []byte) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}
