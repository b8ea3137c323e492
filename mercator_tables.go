package chinacoord

// bandSpec is one row of a BD09 <-> BD09MC coefficient table. Coefficients
// are kept as text so that every backend parses the same literal.
type bandSpec struct {
	threshold string     // lower bound of |input| for this band, "" for the catch-all
	coeffs    [10]string // n0..n9
}

// bd09ToMCBands is selected by |latitude| in degrees.
var bd09ToMCBands = [5]bandSpec{
	{"60", [10]string{
		"0.0008277824516172526", "111320.7020463578",
		"647795574.6671607", "-4082003173.641316", "10774905663.51142",
		"-15171875531.51559", "12053065338.62167", "-5124939663.577472",
		"913311935.9512032", "67.5"}},
	{"45", [10]string{
		"0.00337398766765", "111320.7020202162",
		"4481351.045890365", "-23393751.19931662", "79682215.47186455",
		"-115964993.2797253", "97236711.15602145", "-43661946.33752821",
		"8477230.501135234", "52.5"}},
	{"30", [10]string{
		"0.00220636496208", "111320.7020209128",
		"51751.86112841131", "3796837.749470245", "992013.7397791013",
		"-1221952.21711287", "1340652.697009075", "-620943.6990984312",
		"144416.9293806241", "37.5"}},
	{"15", [10]string{
		"-0.0003441963504368392", "111320.7020576856",
		"278.2353980772752", "2485758.690035394", "6070.750963243378",
		"54821.18345352118", "9540.606633304236", "-2710.55326746645",
		"1405.483844121726", "22.5"}},
	{"", [10]string{
		"-0.0003218135878613132", "111320.7020701615",
		"0.00369383431289", "823725.6402795718", "0.46104986909093",
		"2351.343141331292", "1.58060784298199", "8.77738589078284",
		"0.37238884252424", "7.45"}}}

// mcToBD09Bands is selected by |Y| in meters.
var mcToBD09Bands = [5]bandSpec{
	{"8362377.87", [10]string{
		"-0.000000007435856389565537", "0.000008983055097726239",
		"-0.78625201886289", "96.32687599759846", "-1.85204757529826",
		"-59.36935905485877", "47.40033549296737", "-16.50741931063887",
		"2.28786674699375", "10260144.86"}},
	{"5591021", [10]string{
		"-0.00000003030883460898826", "0.00000898305509983578",
		"0.30071316287616", "59.74293618442277", "7.357984074871",
		"-25.38371002664745", "13.45380521110908", "-3.29883767235584",
		"0.32710905363475", "6856817.37"}},
	{"3481989.83", [10]string{
		"-0.00000001981981304930552", "0.000008983055099779535",
		"0.03278182852591", "40.31678527705744", "0.65659298677277",
		"-4.44255534477492", "0.85341911805263", "0.12923347998204",
		"-0.04625736007561", "4482777.06"}},
	{"1678043.12", [10]string{
		"0.00000000309191371068437", "0.000008983055096812155",
		"0.00006995724062", "23.10934304144901", "-0.00023663490511",
		"-0.6321817810242", "-0.00663494467273", "0.03430082397953",
		"-0.00466043876332", "2555164.4"}},
	{"", [10]string{
		"0.000000002890871144776878", "0.000008983055095805407",
		"-0.00000003068298", "7.47137025468032", "-0.00000353937994",
		"-0.02145144861037", "-0.00001234426596", "0.00010322952773",
		"-0.00000323890364", "826088.5"}}}
