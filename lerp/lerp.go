// Package lerp provides linear interpolation.
package lerp

// Lerp interpolates between from and to. Exact at part 0 and part 1.
func Lerp(part, from, to float64) float64 {
	return from + part*(to-from)
}
