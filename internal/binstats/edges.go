package binstats

import "gonum.org/v1/gonum/floats"

// Resolution-study bin layouts per variable. Kinematic spectra get
// hand-tuned edge tables that widen toward the sparse tails; the bounded
// spin observables share one uniform layout over [-1, 1].
var resolutionEdges = map[string][]float64{
	"ttbar_mass": {
		300, 310, 320, 330, 340, 350, 360, 370, 380, 390,
		400, 410, 420, 430, 440, 450, 460, 470, 480, 490,
		500, 510, 520, 530, 540, 550, 560, 570, 580, 590,
		600, 610, 620, 630, 640, 650, 660, 670, 680, 690,
		700, 720, 740, 760, 780, 800, 820, 860, 900, 940,
		980, 1060, 1140, 1220, 1300,
	},
	"ttbar_pt": {
		0, 4, 8, 12, 16, 20, 24, 28, 32, 36,
		40, 44, 48, 52, 56, 60, 64, 68, 72, 76,
		80, 90, 100, 110, 120, 130, 140, 150, 160, 170,
		180, 190, 200, 220, 240, 260, 280, 300, 320, 340,
		360, 400,
	},
	"ttbar_pz": {
		-1500, -1400, -1320, -1240, -1160, -1080, -1040, -1000,
		-960, -920, -880, -840, -800, -760, -720, -680, -640,
		-600, -560, -520, -480, -440, -400, -360, -320, -280,
		-240, -200, -160, -120, -80, -40, 0, 40, 80, 120,
		160, 200, 240, 280, 320, 360, 400, 440, 480, 520,
		560, 600, 640, 680, 720, 760, 800, 840, 880, 920,
		960, 1000, 1040, 1080, 1160, 1240, 1320, 1400, 1500,
	},
	"t_pt": {
		0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100,
		110, 120, 130, 140, 150, 160, 170, 180, 190, 200, 210,
		220, 230, 240, 250, 260, 270, 280, 290, 300, 320,
		340, 360, 380, 400, 440, 500,
	},
	"t_energy": {
		170, 180, 190, 200, 210, 220, 230, 240, 250,
		260, 270, 280, 290, 300, 310, 320, 330, 340,
		350, 360, 370, 380, 390, 400, 420, 440,
		460, 480, 500, 520, 540, 560, 580, 600, 620,
		640, 660, 680, 700, 720, 740, 760, 780, 800,
		840, 880, 920, 960, 1000,
	},
	"boosted_t_pt": {
		0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100,
		110, 120, 130, 140, 150, 160, 170, 180, 190, 200, 210,
		220, 230, 240, 250, 260, 270, 280, 290, 300, 310, 320,
		330, 340, 350, 360, 370, 380, 390, 400, 410, 420, 430,
		440, 450, 460, 470, 480, 490, 500,
	},
	"boosted_t_p": {
		0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100,
	},
}

var spinObservableEdges = floats.Span(make([]float64, 81), -1, 1)

var spinObservables = map[string]bool{
	"b1k": true, "b1r": true, "b1n": true,
	"b2k": true, "b2r": true, "b2n": true,
	"c_kk": true, "c_rr": true, "c_nn": true,
	"c_rk": true, "c_kn": true, "c_nr": true,
	"c_kr": true, "c_rn": true, "c_nk": true,
	"ll_cHel": true, "c_han": true, "c_hel": true,
}

// SpecFor returns the resolution-study bin layout registered for the given
// variable, or ok=false when the caller should fall back to a uniform split.
func SpecFor(variable string) (BinSpec, bool) {
	if edges, found := resolutionEdges[variable]; found {
		return Edges(edges...), true
	}
	if spinObservables[variable] {
		return Edges(spinObservableEdges...), true
	}
	return BinSpec{}, false
}
