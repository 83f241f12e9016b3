package fukushima

import "github.com/YuminosukeSato/lambertw/core/piecewise"

// wm1Accurate approximates W-1 to 50 bits. Bounds are on z.
var wm1Accurate = piecewise.Table[float64]{
	Name:     "W-1",
	Bits:     50,
	Variable: piecewise.Plain,
	Intervals: []piecewise.Interval[float64]{
		{
			Label:     "X_-1",
			Bound:     -0.3542913309442164,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{-1.0000000000000001110, 4.296301617877713, -4.099140792400746, -6.844284220083331, 17.08477379334527, -13.015133123886661, 3.930360862953985, -0.34636746512247457},
			Den:       []float64{1, -6.627945599474763, 17.7409623741214, -24.446872319343477, 18.249006287190618, -7.058075875662479, 1.1978786762794003, -0.0538757781403526},
		}, // W >= -1.3
		{
			Label:     "Y_-1",
			Bound:     -0.18872688282289435,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-8.225315526444685, -813.2070673200149, -15270.11323767851, -79971.58508967415, -103667.54215808377, 42284.75550506126, 74953.52539760548, 10554.369146366736},
			Den:       []float64{1, 146.3631516166957, 3912.476137253924, 31912.693749754846, 92441.29371710862, 94918.73312047035, 29531.165406571745, 1641.680896033037},
		}, // W >= -2.637
		{
			Label:     "Y_-2",
			Bound:     -0.06049759722695834,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-9.618412744335403, -3557.8569043018006, -254015.5931128438, -5.3923893630670635e6, -3.66382574175369e7, -6.148431948622697e7, 3.0421690377446134e7, 3.972813905487932e7},
			Den:       []float64{1, 507.405256285233, 46852.74715977788, 1.3168304640091436e6, 1.3111690693712415e7, 4.6142116445258014e7, 4.898226895620883e7, 9.195910098798385e6},
		}, // W >= -4.253
		{
			Label:     "Y_-3",
			Bound:     -0.01710533474067601,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-11.038489462297466, -15575.812882656619, -4.249294730489777e6, -3.517024593880342e8, -9.865916303661137e9, -8.619537230330501e10, -1.3286335574027615e11, 1.598954643442066e11},
			Den:       []float64{1, 1837.0770693017166, 612840.975855951, 6.2149181398465484e7, 2.2304011314443083e9, 2.8254232485273697e10, 1.0770866639543156e11, 7.196469887604913e10},
		}, // W >= -5.832
		{
			Label:     "Y_-4",
			Bound:     -0.004595496212794371,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-12.474405916395746, -68180.33557554378, -7.18465998456201e7, -2.3142688221759182e10, -2.5801378337945293e12, -9.518274816138631e13, -8.607325098621033e14, 1.4041941853339961e14},
			Den:       []float64{1, 6852.58137344311, 8.515300102546655e6, 3.2146028239685693e9, 4.29298074174532e11, 2.0234381161638086e13, 2.8699933268233925e14, 7.121013665152548e14},
		}, // W >= -7.382
		{
			Label:     "Y_-5",
			Bound:     -0.0012001610672197724,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-13.921651376890072, -298789.5648238807, -1.2313019937322092e9, -1.555614908189951e12, -6.868534110677271e14, -1.0290616275933267e17, -4.140468370161965e18, -1.4423309998006368e19},
			Den:       []float64{1, 26154.955236499143, 1.2393087277442041e8, 1.783292270247076e11, 9.077260816381084e13, 1.6314734740054252e16, 8.837132386123351e17, 8.416662064338502e18},
		}, // W >= -8.913
		{
			Label:     "Y_-6",
			Bound:     -0.000307288059321915,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-15.377894224591557, -1.312231200509698e6, -2.1408157022111736e10, -1.0718287431557813e14, -1.8849353524027734e17, -1.1394858607309311e20, -1.9261555088729144e22, -3.99784520866769e23},
			Den:       []float64{1, 101712.8677176062, 1.872854594505038e9, 1.0469617416664402e13, 2.0704349060120444e16, 1.4464907902386074e19, 3.0510432205608903e21, 1.1397589139790739e23},
		}, // W >= -10.433
		{
			Label:     "Y_-7",
			Bound:     -0.00007744715983806218,
			Transform: piecewise.ScaledSqrt,
			Num:       []float64{-16.84170141126498, -5.779082325757714e6, -3.77572307912564e11, -7.571213374258986e15, -5.347933891601147e19, -1.3082711732297865e23, -9.146277700452142e25, -8.960276811926363e27},
			Den:       []float64{1, 401820.46666230727, 2.9211518136900494e10, 6.445613537341029e14, 5.031180957649953e18, 1.3879041239716289e22, 1.1575146167513515e25, 1.7199220185947757e27},
		}, // W >= -11.946
		{
			Label:     "V_-8",
			Bound:     -4.5808119698158175e-17,
			Transform: piecewise.LogNeg,
			Num:       []float64{-2.083626038401644, 1.6122436242271496, 5.4464264959637205, -3.088633112831716, 0.4610782915537014, -0.02355383911845638, 0.00040538904170253404, -1.7948156922516826e-6},
			Den:       []float64{1, 2.3699648912703015, -2.1249449707404815, 0.38480980098588485, -0.021720009380176607, 0.00039405862890608636, -1.7909312066865958e-6, 3.115367330813367e-12},
		}, // W >= -41.344
		{
			Label:     "V_-9",
			Bound:     -6.107367223659479e-79,
			Transform: piecewise.LogNeg,
			Num:       []float64{0.16045383766570542, 2.2214182524461514, -0.9411966249205089, 0.09192152381874787, -0.002906976053317166, 0.00003270724799025596, -1.2486672336889892e-7, 1.2247438279861786e-10},
			Den:       []float64{1, -0.7025499608787034, 0.08097434778670319, -0.0027469850029563153, 0.00003194336238518366, -1.2390620687321667e-7, 1.22416361151682e-10, -1.0275718020546766e-17},
		}, // W >= -185.316
		{
			Label:     "V_-10",
			Bound:     inf64,
			Transform: piecewise.LogNeg,
			Num:       []float64{-1.274217970307544, 1.3696658805421384, -0.12519345387558783, 0.0025155722460763843, -0.000015748033750499976, 3.431608538691379e-8, -2.5025242885340437e-11, 4.642388501409958e-15},
			Den:       []float64{1, -0.11420006474152465, 0.00242852338321226, -0.00001552090751275172, 3.4120534760396004e-8, -2.4981056186450274e-11, 4.641976809305971e-15, -1.3608713936942603e-23},
		},
	},
}
