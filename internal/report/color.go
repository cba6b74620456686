package report

import (
	"fmt"
	"hash/fnv"
)

// FallbackColor derives a stable HSL color from a group name, so categories
// without an explicit color render the same hue on every refresh.
func FallbackColor(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	hue := h.Sum32() % 360
	return fmt.Sprintf("hsl(%d, 70%%, 55%%)", hue)
}
