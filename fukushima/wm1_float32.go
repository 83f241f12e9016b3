package fukushima

import "github.com/YuminosukeSato/lambertw/core/piecewise"

// wm1Float32 holds the 24-bit W-1 coefficients rounded to single precision.
var wm1Float32 = piecewise.Table[float32]{
	Name:     "W-1 float32",
	Bits:     24,
	Variable: piecewise.Plain,
	Intervals: []piecewise.Interval[float32]{
		{
			Label:     "Y_-1",
			Bound:     -0.20729378,
			Transform: piecewise.ScaledSqrt,
			Num:       []float32{-6.383723, -74.96865, -19.71482, 70.67733},
			Den:       []float32{1, 24.295837, 64.11246, 17.994497},
		}, // W >= -2.483
		{
			Label:     "Y_-2",
			Bound:     -0.07150771,
			Transform: piecewise.ScaledSqrt,
			Num:       []float32{-7.7233286, -352.48468, -1242.0089, 1171.6476},
			Den:       []float32{1, 77.681244, 648.56433, 566.70154},
		}, // W >= -4.032
		{
			Label:     "Y_-3",
			Bound:     -0.020704413,
			Transform: piecewise.ScaledSqrt,
			Num:       []float32{-9.1377735, -1644.7245, -28105.096, 3896.0798},
			Den:       []float32{1, 272.37527, 7929.224, 23980.123},
		}, // W >= -5.600
		{
			Label:     "Y_-4",
			Bound:     -0.005480013,
			Transform: piecewise.ScaledSqrt,
			Num:       []float32{-10.603388, -7733.3486, -575482.44, -2.1545525e6},
			Den:       []float32{1, 1021.7939, 111300.23, 1.2614256e6},
		}, // W >= -7.178
		{
			Label:     "Y_-5",
			Bound:     -0.001367467,
			Transform: piecewise.ScaledSqrt,
			Num:       []float32{-12.108699, -36896.535, -1.1831127e7, -2.756583e8},
			Den:       []float32{1, 4044.9753, 1.7418278e6, 7.8436904e7},
		}, // W >= -8.766
		{
			Label:     "Y_-6",
			Bound:     -0.00032614227,
			Transform: piecewise.ScaledSqrt,
			Num:       []float32{-13.646762, -179086.11, -2.5084635e8, -2.93437e10},
			Den:       []float32{1, 16743.826, 2.980965e7, 5.5739515e9},
		}, // W >= -10.367
		{
			Label:     "Y_-7",
			Bound:     -0.00007490661,
			Transform: piecewise.ScaledSqrt,
			Num:       []float32{-15.212958, -884954.7, -5.5298156e9, -3.0934187e12},
			Den:       []float32{1, 72009.26, 5.505901e8, 4.4324893e11},
		}, // W >= -11.983
		{
			Label:     "V_-8",
			Bound:     -1.0962445e-19,
			Transform: piecewise.LogNeg,
			Num:       []float32{-0.032401163, 2.0281942, -0.5275243, 0.017340295},
			Den:       []float32{1, -0.45004275, 0.017154707, -5.2438196e-7},
		}, // W >= -47.518
		{
			Label:     "V_-9",
			Bound:     inf32,
			Transform: piecewise.LogNeg,
			Num:       []float32{-1.4411247, 1.281927, -0.07497936, 0.0004763631},
			Den:       []float32{1, -0.072000876, 0.00047548933, -4.171498e-10},
		}, // W >= -317.993
	},
}
