package document

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberSeed número con el que arranca la numeración cuando no hay documentos previos.
const NumberSeed = 1001

// NextNumber sugiere el número del siguiente documento a partir del más reciente
// (PREFIJO-N → PREFIJO-N+1). Del sufijo se toman los dígitos iniciales ("1042a" → 1042).
// Sin documento previo, o si el sufijo no empieza por un número, devuelve PREFIJO-1001.
// Es solo un valor por defecto: no garantiza unicidad.
func NextNumber(prefix, latest string) string {
	latest = strings.TrimSpace(latest)
	if latest == "" {
		return fmt.Sprintf("%s-%d", prefix, NumberSeed)
	}
	parts := strings.Split(latest, "-")
	if len(parts) < 2 {
		return fmt.Sprintf("%s-%d", prefix, NumberSeed)
	}
	n, err := strconv.Atoi(leadingDigits(strings.TrimSpace(parts[1])))
	if err != nil {
		return fmt.Sprintf("%s-%d", prefix, NumberSeed)
	}
	return fmt.Sprintf("%s-%d", prefix, n+1)
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
