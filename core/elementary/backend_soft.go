//go:build lambertw_softfloat

package elementary

const backendName = "soft"

func sqrt64(x float64) float64 { return softSqrt(x) }

func log64(x float64) float64 { return softLog(x) }
