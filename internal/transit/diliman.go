package transit

import (
	"sync"

	"sakay-router/internal/models"
)

var (
	dilimanOnce  sync.Once
	dilimanGraph *Graph
)

// Diliman returns the hand-curated transit graph for the Diliman district
// of Quezon City. Built once; shared read-only for the process lifetime.
func Diliman() *Graph {
	dilimanOnce.Do(func() {
		g, err := NewGraph(dilimanNodes, dilimanEdges)
		if err != nil {
			// The compiled-in data is validated by tests; a bad reference
			// here is a programming error, not a runtime condition.
			panic(err)
		}
		dilimanGraph = g
	})
	return dilimanGraph
}

var dilimanNodes = []NodeSpec{
	{
		ID:       "ts_palengke",
		Name:     "Teachers Village Palengke",
		Address:  "Malingap St, Teachers Village East, Quezon City",
		Position: models.Coordinates{Lat: 14.6741, Lng: 121.0359},
		Category: models.TerminalJeep,
	},
	{
		ID:       "visayas_ave",
		Name:     "Visayas Avenue Terminal",
		Address:  "Visayas Ave cor Congressional Ave, Quezon City",
		Position: models.Coordinates{Lat: 14.6693, Lng: 121.0447},
		Category: models.TerminalMixed,
	},
	{
		ID:       "technohub",
		Name:     "UP-Ayala Technohub",
		Address:  "Commonwealth Ave, UP Campus, Quezon City",
		Position: models.Coordinates{Lat: 14.6575, Lng: 121.0580},
		Category: models.TerminalEJeep,
	},
	{
		ID:       "philcoa",
		Name:     "Philcoa Terminal",
		Address:  "Commonwealth Ave cor Elliptical Rd, Quezon City",
		Position: models.Coordinates{Lat: 14.6533, Lng: 121.0483},
		Category: models.TerminalJeep,
	},
	{
		ID:       "up_diliman",
		Name:     "UP Diliman Ikot Terminal",
		Address:  "Quirino Ave, UP Campus, Quezon City",
		Position: models.Coordinates{Lat: 14.6549, Lng: 121.0645},
		Category: models.TerminalEJeep,
	},
	{
		ID:       "qc_hall",
		Name:     "Quezon City Hall",
		Address:  "Elliptical Rd, Diliman, Quezon City",
		Position: models.Coordinates{Lat: 14.6460, Lng: 121.0501},
		Category: models.TerminalBus,
	},
	{
		ID:       "sm_north",
		Name:     "SM City North EDSA",
		Address:  "North Ave cor EDSA, Quezon City",
		Position: models.Coordinates{Lat: 14.6563, Lng: 121.0327},
		Category: models.TerminalMixed,
	},
	{
		ID:       "tandang_sora",
		Name:     "Tandang Sora Market",
		Address:  "Tandang Sora Ave, Quezon City",
		Position: models.Coordinates{Lat: 14.6760, Lng: 121.0437},
		Category: models.TerminalTricycle,
	},
}

var dilimanEdges = []EdgeSpec{
	{From: "ts_palengke", To: "visayas_ave", DistanceKm: 2.4, TimeMin: 15, Cost: 13, Mode: models.ModeRide, Vehicle: "Jeepney"},
	{From: "visayas_ave", To: "ts_palengke", DistanceKm: 2.4, TimeMin: 15, Cost: 13, Mode: models.ModeRide, Vehicle: "Jeepney"},

	{From: "ts_palengke", To: "philcoa", DistanceKm: 3.0, TimeMin: 20, Cost: 13, Mode: models.ModeRide, Vehicle: "Jeepney"},
	{From: "philcoa", To: "ts_palengke", DistanceKm: 3.0, TimeMin: 20, Cost: 13, Mode: models.ModeRide, Vehicle: "Jeepney"},

	{From: "ts_palengke", To: "tandang_sora", DistanceKm: 1.1, TimeMin: 14, Cost: 0, Mode: models.ModeWalk},
	{From: "tandang_sora", To: "ts_palengke", DistanceKm: 1.1, TimeMin: 14, Cost: 0, Mode: models.ModeWalk},

	{From: "visayas_ave", To: "technohub", DistanceKm: 5.1, TimeMin: 25, Cost: 20, Mode: models.ModeRide, Vehicle: "Jeepney"},
	{From: "technohub", To: "visayas_ave", DistanceKm: 5.1, TimeMin: 25, Cost: 20, Mode: models.ModeRide, Vehicle: "Jeepney"},

	{From: "visayas_ave", To: "tandang_sora", DistanceKm: 1.9, TimeMin: 10, Cost: 25, Mode: models.ModeRide, Vehicle: "Tricycle"},
	{From: "tandang_sora", To: "visayas_ave", DistanceKm: 1.9, TimeMin: 10, Cost: 25, Mode: models.ModeRide, Vehicle: "Tricycle"},

	{From: "philcoa", To: "technohub", DistanceKm: 3.8, TimeMin: 30, Cost: 15, Mode: models.ModeRide, Vehicle: "E-Jeep"},
	{From: "technohub", To: "philcoa", DistanceKm: 3.8, TimeMin: 30, Cost: 15, Mode: models.ModeRide, Vehicle: "E-Jeep"},

	{From: "philcoa", To: "up_diliman", DistanceKm: 2.2, TimeMin: 12, Cost: 13, Mode: models.ModeRide, Vehicle: "E-Jeep"},
	{From: "up_diliman", To: "philcoa", DistanceKm: 2.2, TimeMin: 12, Cost: 13, Mode: models.ModeRide, Vehicle: "E-Jeep"},

	{From: "up_diliman", To: "technohub", DistanceKm: 1.4, TimeMin: 18, Cost: 0, Mode: models.ModeWalk},
	{From: "technohub", To: "up_diliman", DistanceKm: 1.4, TimeMin: 18, Cost: 0, Mode: models.ModeWalk},

	{From: "philcoa", To: "qc_hall", DistanceKm: 1.6, TimeMin: 10, Cost: 13, Mode: models.ModeRide, Vehicle: "Jeepney"},
	{From: "qc_hall", To: "philcoa", DistanceKm: 1.6, TimeMin: 10, Cost: 13, Mode: models.ModeRide, Vehicle: "Jeepney"},

	{From: "qc_hall", To: "technohub", DistanceKm: 4.9, TimeMin: 22, Cost: 15, Mode: models.ModeRide, Vehicle: "Bus"},
	{From: "technohub", To: "qc_hall", DistanceKm: 4.9, TimeMin: 22, Cost: 15, Mode: models.ModeRide, Vehicle: "Bus"},

	{From: "sm_north", To: "visayas_ave", DistanceKm: 3.2, TimeMin: 16, Cost: 15, Mode: models.ModeRide, Vehicle: "Jeepney"},
	{From: "visayas_ave", To: "sm_north", DistanceKm: 3.2, TimeMin: 16, Cost: 15, Mode: models.ModeRide, Vehicle: "Jeepney"},

	{From: "sm_north", To: "philcoa", DistanceKm: 2.6, TimeMin: 14, Cost: 13, Mode: models.ModeRide, Vehicle: "Jeepney"},
	{From: "philcoa", To: "sm_north", DistanceKm: 2.6, TimeMin: 14, Cost: 13, Mode: models.ModeRide, Vehicle: "Jeepney"},
}
