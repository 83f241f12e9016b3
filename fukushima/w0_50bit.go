package fukushima

import "github.com/YuminosukeSato/lambertw/core/piecewise"

// w0Accurate approximates W0 to 50 bits. Bounds are on zc = z + 1/e.
var w0Accurate = piecewise.Table[float64]{
	Name:     "W0",
	Bits:     50,
	Variable: piecewise.Shifted,
	Intervals: []piecewise.Interval[float64]{
		{
			Label:     "X_1",
			Bound:     2.5498939065034736,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{-0.9999999999999999, -2.739966866820366, 0.0261642077269904, 6.370916807894901, 7.101328651785403, 2.9800826783006853, 0.4881959681378987, 0.02375303578733361, 0.00007736576009377243},
			Den:       []float64{1, 5.071610848417428, 9.986838818354528, 9.660755192207887, 4.794372899133612, 1.1629703477704523, 0.11849462500733755, 0.0034326525132402225},
		}, // W <= 0.893
		{
			Label:     "X_2",
			Bound:     43.61392446266937,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{-0.9999780180057891, -0.704157515904836, 2.1232260832802528, 2.389676070293572, 0.7776531180502918, 0.08968669899364475, 0.00330624857537464, 0.000025106760479132852},
			Den:       []float64{1, 3.035602682808541, 3.143453015128678, 1.3723156566592447, 0.2584469741574421, 0.019551162251819045, 0.00048775933244530126, 2.3165116841073155e-6},
		}, // W <= 2.754
		{
			Label:     "X_3",
			Bound:     598.4535337187828,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{-0.989674203372735, 0.5958768060639438, 1.4225083018151943, 0.4488288916832381, 0.04450494333239003, 0.0015218794835419578, 0.00001607226355650222, 3.372337302030651e-8},
			Den:       []float64{1, 1.6959402394626197, 0.809685734155009, 0.14002034999817023, 0.009357187849379016, 0.00023251487593389772, 1.806017075150299e-6, 2.5750667337015923e-9},
		}, // W <= 4.821
		{
			Label:     "X_4",
			Bound:     8049.4919850757615,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{-0.7731649199720623, 1.1391333504296703, 0.43116117255217074, 0.035773078319037505, 0.0009644164058055909, 8.972385459867587e-6, 2.5623503144117725e-8, 1.4348813778416631e-11},
			Den:       []float64{1, 0.7465728745651442, 0.1262977703341935, 0.006974151295956318, 0.00014089339244355355, 1.0257432883152943e-6, 2.290268719011923e-9, 9.27942310132645e-13},
		}, // W <= 7.041
		{
			Label:     "X_5",
			Bound:     111124.95412121782,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{0.12007101671553688, 0.8335264082991283, 0.07014277591694834, 0.0014846357985475124, 0.000010478757366110155, 2.5715892987071037e-8, 1.9384214479606474e-11, 2.844704903913941e-15},
			Den:       []float64{1, 0.25396738845619127, 0.012839238907330318, 0.00020275375632510998, 1.148295607344914e-6, 2.3188370605674264e-9, 1.4271994165742564e-12, 1.5884836942394796e-16},
		}, // W <= 9.380
		{
			Label:     "X_6",
			Bound:     1.5870429812082297e6,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{1.7221104439937711, 0.3991959428648428, 0.007988554014068503, 0.000042889742253257923, 7.814682818052987e-8, 4.981963876435468e-11, 9.76508897142653e-15, 3.7052997281721726e-19},
			Den:       []float64{1, 0.07400743811802055, 0.0010333501506697741, 4.436085803572751e-6, 6.782291231637104e-9, 3.683435670763949e-12, 6.083615956026604e-16, 1.8149869335981227e-20},
		}, // W <= 11.809
		{
			Label:     "X_7",
			Bound:     2.341470840187546e7,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{3.7529314023434543, 0.15491342690357807, 0.0007566314067590079, 1.0271609235969978e-6, 4.785324767593006e-10, 7.832804077027547e-14, 3.943303375839104e-18, 3.8232862205660286e-23},
			Den:       []float64{1, 0.020112985338854444, 0.00007471228615483014, 8.480059800369383e-8, 3.4182424130376914e-11, 4.8866259139690955e-15, 2.1223373626834635e-19, 1.6642985671260583e-24},
		}, // W <= 14.308
		{
			Label:     "X_8",
			Bound:     3.5576474308009964e8,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{6.019654205560656, 0.05349667284179786, 0.0000643408492753165, 2.1969090100095967e-8, 2.5927988937033063e-12, 1.0779198161801527e-16, 1.3780424091017899e-21, 3.376897315074255e-27},
			Den:       []float64{1, 0.0052809683704233374, 5.102050121938956e-6, 1.5018312292270831e-9, 1.5677706636413188e-13, 5.799204123891188e-18, 6.513317077032078e-23, 1.3205080139213406e-28},
		}, // W <= 16.865
		{
			Label:     "X_9",
			Bound:     5.550171629616363e9,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{8.42802685009897, 0.017155758546279713, 5.083662066982932e-6, 4.3354903691832584e-10, 1.2841017145645583e-14, 1.3419106769745886e-19, 4.310169845549223e-25, 2.642243342208819e-31},
			Den:       []float64{1, 0.0013572006754595301, 3.35352434814262e-7, 2.5206969246421264e-11, 6.713622627306053e-16, 6.3324226680854686e-21, 1.8128167400013776e-26, 9.36620300581368e-33},
		}, // W <= 19.468
		{
			Label:     "X_10",
			Bound:     8.867470483965778e10,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{10.931063230472498, 0.0052224234540245535, 3.799610571181013e-7, 8.030579353341036e-12, 5.91397856270906e-17, 1.538202035953303e-22, 1.228894412626811e-28, 1.8665089270660123e-35},
			Den:       []float64{1, 0.0003432870255119758, 2.1395351518538843e-8, 4.0524170186631593e-13, 2.718142431533571e-18, 6.453898663835549e-24, 4.6494613785888986e-30, 6.044202436729939e-37},
		}, // W <= 22.112
		{
			Label:     "X_11",
			Bound:     1.4477791865272903e12,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{13.502943080893871, 0.0015284636506346266, 2.7156967358262345e-8, 1.4110394051242162e-13, 2.560573431121973e-19, 1.6421293724425338e-25, 3.232494469143584e-32, 1.2054662641251783e-39},
			Den:       []float64{1, 0.00008570151287908946, 1.3311244435752692e-9, 6.278892444038535e-15, 1.0483788152252204e-20, 6.194349996624916e-27, 1.1101567860340918e-33, 3.5897381128308964e-41},
		}, // W <= 24.791
		{
			Label:     "X_12",
			Bound:     2.411145863251185e13,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{16.128076167439016, 0.0004336038517646707, 1.869640387182092e-9, 2.3691795766901487e-15, 1.0503191826963154e-21, 1.6461927573606763e-28, 7.913827608347452e-36, 7.184589034370167e-44},
			Den:       []float64{1, 0.00002115425526310294, 8.100611544232328e-11, 9.41559860221699e-17, 3.87251279022953e-23, 5.634465111557057e-30, 2.486095108421003e-37, 1.9788304737427787e-45},
		}, // W <= 27.500
		{
			Label:     "X_13",
			Bound:     4.0897036442600844e14,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{18.796301105534486, 0.00011989443339646469, 1.2463377528676863e-10, 3.821945685801037e-17, 4.105569393025208e-24, 1.5595231456048464e-31, 1.815717355307799e-39, 3.980799776432617e-48},
			Den:       []float64{1, 5.169103198835992e-6, 4.832557182331371e-12, 1.3707888746916928e-18, 1.375456085002448e-25, 4.88118829756618e-33, 5.251864182817021e-41, 1.0192119593134756e-49},
		}, // W <= 30.236
		{
			Label:     "X_14",
			Bound:     7.055590147678997e15,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{21.500582830667334, 0.000032441943237735277, 8.076496341683755e-12, 5.948844550612289e-19, 1.536410618721586e-26, 1.4033231297002387e-34, 3.925987271230577e-43, 2.0629086382257736e-52},
			Den:       []float64{1, 1.251531764243385e-6, 2.831031421481707e-13, 1.942366641612364e-20, 4.712861600415736e-28, 4.0433347391839944e-36, 1.0515141443831188e-44, 4.9316490935436926e-54},
		}, // W <= 32.996
		{
			Label:     "X_15",
			Bound:     1.2366607557976728e17,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{24.235812532416976, 8.61615059957768e-6, 5.103343156186827e-13, 8.964239366584964e-21, 5.525436418109742e-29, 1.2045072724050606e-37, 8.037299717652684e-47, 1.0049140812146493e-56},
			Den:       []float64{1, 3.004676184474948e-7, 1.6309104270855464e-14, 2.684227103029893e-22, 1.5619672632458881e-30, 3.2131689030397986e-39, 2.0032396245307684e-48, 2.252027455467633e-58},
		}, // W <= 35.779
		{
			Label:     "X_16",
			Bound:     2.1999373487931e18,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{26.99813434798744, 2.2512257767572284e-6, 3.1521230759866967e-14, 1.311403571979063e-22, 1.9156784033962365e-31, 9.89670030534448e-41, 1.5640423898448434e-50, 4.621619304066487e-61},
			Den:       []float64{1, 7.157267637090758e-8, 9.250050609111575e-16, 3.6239819582787575e-24, 5.018771249380042e-33, 2.456586198821807e-42, 3.643565843399166e-52, 9.743249064015534e-63},
		}, // W <= 38.582
		{
			Label:     "X_17",
			Bound:     3.9685392198344016e19,
			Transform: piecewise.SqrtShifted,
			Num:       []float64{29.78454670283197, 5.797176439217133e-7, 1.906987279260195e-15, 1.8668700870858763e-24, 6.420051095337094e-34, 7.807662465081897e-44, 2.9029638696956317e-54, 2.014187045856618e-65},
			Den:       []float64{1, 1.6924463180469705e-8, 5.170393431125454e-17, 4.787153272156007e-26, 1.566440583254515e-35, 1.8113137982381332e-45, 6.345415028949542e-56, 4.00729640252444e-67},
		}, // W <= 41.404
		{
			Label:     "U_18",
			Bound:     1.4127075145274652e104,
			Transform: piecewise.LogShifted,
			Num:       []float64{0.7441349946012678, 0.41403243618005914, 0.26012564166773416, 0.021450457095960294, 0.0005187237726470591, 4.357469356831998e-6, 1.2363066058921707e-8, 9.019414776630996e-12},
			Den:       []float64{1, 0.3348781106746701, 0.023756834394570627, 0.0005422563300890773, 4.437898005257962e-6, 1.24365854976681e-8, 9.022582586763186e-12, -4.205783627010972e-19},
		}, // W <= 234.358
		{
			Label:     "U_19",
			Bound:     inf64,
			Transform: piecewise.LogShifted,
			Num:       []float64{-0.6151441281272976, 0.6797931013363093, 0.08968535370458582, 0.001564494148398938, 7.734990187817636e-6, 1.2891647546699435e-8, 7.0890325988973816e-12, 9.841979033427972e-16},
			Den:       []float64{1, 0.09730026371040144, 0.001610367274844206, 7.8247741003077e-6, 1.2949261308971346e-8, 7.098691121934283e-12, 9.842628504222704e-16, -1.5960147252606056e-24},
		},
	},
}
