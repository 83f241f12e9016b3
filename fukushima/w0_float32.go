package fukushima

import "github.com/YuminosukeSato/lambertw/core/piecewise"

// w0Float32 holds the 24-bit W0 coefficients rounded to single precision.
var w0Float32 = piecewise.Table[float32]{
	Name:     "W0 float32",
	Bits:     24,
	Variable: piecewise.Plain,
	Intervals: []piecewise.Interval[float32]{
		{
			Label:     "X_1",
			Bound:     2.0082178,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{-0.99999994, 0.055730052, 2.1269732, 0.81351125, 0.01632488},
			Den:       []float32{1, 2.2759066, 1.367597, 0.18615824},
		}, // W <= 0.854
		{
			Label:     "X_2",
			Bound:     30.539143,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{-0.9855197, 1.0774976, 0.871751, 0.054352727},
			Den:       []float32{1, 1.1861014, 0.24996299, 0.006881369},
		}, // W <= 2.502
		{
			Label:     "X_3",
			Bound:     371.66983,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{-0.7623971, 1.2317731, 0.24342448, 0.0043206015},
			Den:       []float32{1, 0.57938623, 0.04660143, 0.00043512817},
		}, // W <= 4.430
		{
			Label:     "X_4",
			Bound:     4705.919,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{0.085801244, 0.82539797, 0.03978196, 0.0001878558},
			Den:       []float32{1, 0.21338077, 0.005462672, 0.000015449534},
		}, // W <= 6.574
		{
			Label:     "X_5",
			Bound:     64640.797,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{1.6219245, 0.38869146, 0.0045750644, 5.538467e-6},
			Den:       []float32{1, 0.06521946, 0.0004788276, 3.8094828e-7},
		}, // W <= 8.892
		{
			Label:     "X_6",
			Bound:     965649.0308711632,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{3.6218996, 0.14884646, 0.00042469622, 1.279018e-7},
			Den:       []float32{1, 0.017985659, 0.00003544645, 7.506249e-9},
		}, // W <= 11.351
		{
			Label:     "X_7",
			Bound:     1.5593334e7,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{5.907337, 0.050053652, 0.00003407215, 2.4812066e-9},
			Den:       []float32{1, 0.004655899, 2.3449445e-6, 1.263143e-10},
		}, // W <= 13.928
		{
			Label:     "X_8",
			Bound:     2.7025642e8,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{8.382601, 0.015360346, 2.4433384e-6, 4.1856803e-11},
			Den:       []float32{1, 0.0011507423, 1.4221429e-7, 1.8739173e-12},
		}, // W <= 16.605
		{
			Label:     "X_9",
			Bound:     4.995019e9,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{10.996675, 0.0043942137, 1.5966666e-7, 6.2665384e-13},
			Den:       []float32{1, 0.00027383756, 8.015706e-9, 2.4956982e-14},
		}, // W <= 19.368
		{
			Label:     "X_10",
			Bound:     9.791115e10,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{13.719833, 0.0011874444, 9.630338e-9, 8.443452e-15},
			Den:       []float32{1, 0.00006305637, 4.2358766e-10, 3.0205404e-16},
		}, // W <= 22.207
		{
			Label:     "X_11",
			Bound:     2.0259754e12,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{16.53312, 0.00030583126, 5.411295e-10, 1.034713e-16},
			Den:       []float32{1, 0.0000140991615, 2.1121096e-11, 3.3526927e-18},
		}, // W <= 25.114
		{
			Label:     "X_12",
			Bound:     4.4077446e13,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{19.42352, 0.00007555927, 2.8530024e-11, 1.1629627e-18},
			Den:       []float32{1, 3.0692092e-6, 9.986661e-13, 3.4376718e-20},
		}, // W <= 28.082
		{
			Label:     "X_13",
			Bound:     1.0048382e15,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{22.381577, 0.000017994724, 1.4194877e-12, 1.2071105e-20},
			Den:       []float32{1, 6.518396e-7, 4.4958666e-14, 3.2755428e-22},
		}, // W <= 31.106
		{
			Label:     "X_14",
			Bound:     2.3932552e16,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{25.400105, 4.146738e-6, 6.69627e-14, 1.1637905e-22},
			Den:       []float32{1, 1.3529801e-7, 1.933608e-15, 2.9149397e-24},
		}, // W <= 34.182
		{
			Label:     "X_15",
			Bound:     5.9397996e17,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{28.473455, 9.2746825e-7, 3.006899e-15, 1.0473557e-24},
			Den:       []float32{1, 2.748649e-8, 7.9678986e-17, 2.4331666e-26},
		}, // W <= 37.306
		{
			Label:     "X_16",
			Bound:     1.5326938e19,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{31.597055, 2.0184225e-7, 1.2895788e-16, 8.836117e-27},
			Den:       []float32{1, 5.4723945e-9, 3.153773e-18, 1.9122035e-28},
		}, // W <= 40.475
		{
			Label:     "X_17",
			Bound:     4.103566e20,
			Transform: piecewise.SqrtShifted,
			Num:       []float32{34.767124, 4.28308e-8, 5.2975885e-18, 7.0145516e-29},
			Den:       []float32{1, 1.0689302e-9, 1.20167e-19, 1.4195244e-30},
		}, // W <= 43.687
		{
			Label:     "U_18",
			Bound:     inf32,
			Transform: piecewise.Log,
			Num:       []float32{-0.6070237, 0.6982872, 0.07579514, 0.0005166926},
			Den:       []float32{1, 0.07904843, 0.00051760994, -4.2438403e-10},
		}, // W <= 319.673
	},
}
