package fukushima

import "github.com/YuminosukeSato/lambertw/core/piecewise"

// wm1Fast approximates W-1 to 24 bits. Bounds are on z.
var wm1Fast = piecewise.Table[float64]{
	Name:     "W-1 fast",
	Bits:     24,
	Variable: piecewise.Plain,
	Intervals: []piecewise.Interval[float64]{
		{
			Label:     "Y_-1",
			Bound:     -0.20729377764038415,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-6.383722822801905, -74.96865325959405, -19.714821552432483, 70.67732666780924},
			Den:       []float64{1, 24.29583695187869, 64.11246061138604, 17.994497369039312},
		}, // W >= -2.483
		{
			Label:     "Y_-2",
			Bound:     -0.07150770508384195,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-7.723328481229978, -352.48469097042914, -1242.0088903685678, 1171.6475960620498},
			Den:       []float64{1, 77.6812425889974, 648.5643121407525, 566.7015497643616},
		}, // W >= -4.032
		{
			Label:     "Y_-3",
			Bound:     -0.02070441262171748,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-9.137773141758155, -1644.724479150889, -28105.096098779683, 3896.0798103909215},
			Den:       []float64{1, 272.3752613512397, 7929.22426129135, 23980.122860821313},
		}, // W >= -5.600
		{
			Label:     "Y_-4",
			Bound:     -0.005480012945209444,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-10.603388239566373, -7733.348521498648, -575482.4070796443, -2.154552604188978e6},
			Den:       []float64{1, 1021.7938566066817, 111300.22915486521, 1.2614256400088442e6},
		}, // W >= -7.178
		{
			Label:     "Y_-5",
			Bound:     -0.0013674669892508042,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-12.108699273343438, -36896.535108166376, -1.1831126720106054e7, -2.7565830813940924e8},
			Den:       []float64{1, 4044.97530648807, 1.7418277619030005e6, 7.84369073808069e7},
		}, // W >= -8.766
		{
			Label:     "Y_-6",
			Bound:     -0.00032614226731072566,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-13.646761936746191, -179086.11585715148, -2.5084634935214642e8, -2.9343700494833714e10},
			Den:       []float64{1, 16743.82660773714, 2.9809650946011744e7, 5.5739514816958e9},
		}, // W >= -10.367
		{
			Label:     "Y_-7",
			Bound:     -0.00007490661203610144,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-15.212958142001646, -884954.6879816896, -5.529815437863348e9, -3.093418743531467e12},
			Den:       []float64{1, 72009.25552521012, 5.50590076718758e8, 4.432489486700034e11},
		}, // W >= -11.983
		{
			Label:     "V_-8",
			Bound:     -1.0962444526410995e-19,
			Transform: piecewise.LogNeg,
			Num:       []float64{-0.032401163177791084, 2.0281942144742504, -0.5275243124259271, 0.017340294772717584},
			Den:       []float64{1, -0.4500427444389174, 0.017154705753566295, -5.243819620271836e-7},
		}, // W >= -47.518
		{
			Label:     "V_-9",
			Bound:     -2.50960992999459e-136,
			Transform: piecewise.LogNeg,
			Num:       []float64{-1.4411246595812097, 1.2819269639980477, -0.07497935611381233, 0.0004763630916206915},
			Den:       []float64{1, -0.07200087372386865, 0.0004754893298959703, -4.171497924754684e-10},
		}, // W >= -317.993
		{
			Label:     "V_-10",
			Bound:     inf64,
			Transform: piecewise.LogNeg,
			Num:       []float64{-3.310876091171045, 1.0500678809935176, -0.00823674958213432, 5.528956159491019e-6},
			Den:       []float64{1, -0.008189272743331552, 5.528007600971195e-6, -3.9222773084574063e-14},
		},
	},
}
