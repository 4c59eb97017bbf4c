package bot

// Weights parameterizes the linear heuristic. Card points enter follow
// decisions in raw thirds and lead/trump decisions normalized to whole
// points; strengths are raw in follow decisions and normalized to [0,1]
// elsewhere, matching the scale the values below were tuned on.
type Weights struct {
	// Trump selection: per-suit linear score.
	TrumpCount    float64
	TrumpThirds   float64
	TrumpStrength float64
	TrumpHasThree float64
	TrumpHasTwo   float64
	TrumpHasAce   float64

	// Leading a trick.
	LeadThirds       float64
	LeadStrength     float64
	LeadTrumpPenalty float64
	LeadTrumpEndgame float64
	LeadSuitLength   float64

	// Following while the partner holds the trick: override only past
	// these thresholds (table points, trick index).
	OverridePointsThreshold float64
	OverrideTrickThreshold  float64
	OverrideThirds          float64
	OverrideStrength        float64
	OverrideTableBonus      float64
	SupportDumpThirds       float64
	SupportDumpStrength     float64
	SupportDumpTrump        float64

	// Following while opponents hold the trick.
	CaptureThirds     float64
	CaptureStrength   float64
	CaptureTrump      float64
	CaptureTableBonus float64
	DumpThirds        float64
	DumpStrength      float64
	DumpTrump         float64
}

// DefaultTuning holds the tuned weight vector the hill climber converged on
// against the untuned baseline.
var DefaultTuning = Weights{
	TrumpCount:    1.1958994967541685,
	TrumpThirds:   0.23732132780136353,
	TrumpStrength: 1.3145561114881144,
	TrumpHasThree: 2.9150501916851876,
	TrumpHasTwo:   2.1061757294197907,
	TrumpHasAce:   2.2683148287656025,

	LeadThirds:       1.155172106006112,
	LeadStrength:     0.7173930080513861,
	LeadTrumpPenalty: 4.0871172885377804,
	LeadTrumpEndgame: 0.3641083368279365,
	LeadSuitLength:   0.47583165471112804,

	OverridePointsThreshold: 2.0887888800332526,
	OverrideTrickThreshold:  8.434659265083043,
	OverrideThirds:          1.0050785455262579,
	OverrideStrength:        0.9273591977417727,
	OverrideTableBonus:      0.381876215038942,
	SupportDumpThirds:       0.7419534138672005,
	SupportDumpStrength:     1.4954955712462221,
	SupportDumpTrump:        1.6991269397494742,

	CaptureThirds:     1.9500378843662873,
	CaptureStrength:   2.259093493950632,
	CaptureTrump:      -0.6452249782432833,
	CaptureTableBonus: 2.1809659381862323,
	DumpThirds:        0.8862483106944297,
	DumpStrength:      0.9269978097802034,
	DumpTrump:         2.1438463666192784,
}

// NumWeights is the length of the flattened weight vector.
const NumWeights = 26

// Vector flattens the weights for the tuner.
func (w Weights) Vector() [NumWeights]float64 {
	return [NumWeights]float64{
		w.TrumpCount, w.TrumpThirds, w.TrumpStrength,
		w.TrumpHasThree, w.TrumpHasTwo, w.TrumpHasAce,
		w.LeadThirds, w.LeadStrength, w.LeadTrumpPenalty,
		w.LeadTrumpEndgame, w.LeadSuitLength,
		w.OverridePointsThreshold, w.OverrideTrickThreshold,
		w.OverrideThirds, w.OverrideStrength, w.OverrideTableBonus,
		w.SupportDumpThirds, w.SupportDumpStrength, w.SupportDumpTrump,
		w.CaptureThirds, w.CaptureStrength, w.CaptureTrump, w.CaptureTableBonus,
		w.DumpThirds, w.DumpStrength, w.DumpTrump,
	}
}

// WeightsFromVector is the inverse of Vector.
func WeightsFromVector(v [NumWeights]float64) Weights {
	return Weights{
		TrumpCount: v[0], TrumpThirds: v[1], TrumpStrength: v[2],
		TrumpHasThree: v[3], TrumpHasTwo: v[4], TrumpHasAce: v[5],
		LeadThirds: v[6], LeadStrength: v[7], LeadTrumpPenalty: v[8],
		LeadTrumpEndgame: v[9], LeadSuitLength: v[10],
		OverridePointsThreshold: v[11], OverrideTrickThreshold: v[12],
		OverrideThirds: v[13], OverrideStrength: v[14], OverrideTableBonus: v[15],
		SupportDumpThirds: v[16], SupportDumpStrength: v[17], SupportDumpTrump: v[18],
		CaptureThirds: v[19], CaptureStrength: v[20], CaptureTrump: v[21], CaptureTableBonus: v[22],
		DumpThirds: v[23], DumpStrength: v[24], DumpTrump: v[25],
	}
}
