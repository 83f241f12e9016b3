//go:build !lambertw_softfloat

package elementary

import "math"

const backendName = "math"

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

func sqrt64(x float64) float64 { return math.Sqrt(x) }

// log64 scales subnormal arguments into the normal range first: the assembly
// math.Log on amd64 returns wrong values below minNormal.
func log64(x float64) float64 {
	if x > 0 && x < minNormal {
		return math.Log(x*0x1p52) - 52*math.Ln2
	}
	return math.Log(x)
}
