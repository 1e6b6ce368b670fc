package geocoding

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"sakay-router/internal/models"
)

// fallbackPlaces is the fixed list of well-known district places served
// when the provider is unreachable. Matching is a case-insensitive
// substring scan over the names.
var fallbackPlaces = []models.Place{
	{Name: "SM City North EDSA", Address: "North Ave cor EDSA, Quezon City", Position: models.Coordinates{Lat: 14.6563, Lng: 121.0327}},
	{Name: "UP Town Center", Address: "Katipunan Ave, Diliman, Quezon City", Position: models.Coordinates{Lat: 14.6497, Lng: 121.0774}},
	{Name: "UP-Ayala Technohub", Address: "Commonwealth Ave, UP Campus, Quezon City", Position: models.Coordinates{Lat: 14.6575, Lng: 121.0580}},
	{Name: "Teachers Village Palengke", Address: "Malingap St, Teachers Village East, Quezon City", Position: models.Coordinates{Lat: 14.6741, Lng: 121.0359}},
	{Name: "Quezon Memorial Circle", Address: "Elliptical Rd, Diliman, Quezon City", Position: models.Coordinates{Lat: 14.6515, Lng: 121.0493}},
	{Name: "Quezon City Hall", Address: "Elliptical Rd, Diliman, Quezon City", Position: models.Coordinates{Lat: 14.6460, Lng: 121.0501}},
	{Name: "TriNoma", Address: "North Ave cor EDSA, Quezon City", Position: models.Coordinates{Lat: 14.6536, Lng: 121.0333}},
	{Name: "Visayas Avenue Market", Address: "Visayas Ave, Quezon City", Position: models.Coordinates{Lat: 14.6693, Lng: 121.0447}},
	{Name: "Philcoa", Address: "Commonwealth Ave cor Elliptical Rd, Quezon City", Position: models.Coordinates{Lat: 14.6533, Lng: 121.0483}},
	{Name: "UP Diliman", Address: "Roxas Ave, UP Campus, Quezon City", Position: models.Coordinates{Lat: 14.6549, Lng: 121.0645}},
}

func fallbackSearch(query string) []models.Place {
	q := strings.ToLower(query)
	return lo.Filter(fallbackPlaces, func(p models.Place, _ int) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	})
}

// fallbackReverse labels a point by its 4-decimal rounded coordinates
// when the provider cannot be reached.
func fallbackReverse(pos models.Coordinates) *models.ReverseResult {
	return &models.ReverseResult{
		ShortName: fmt.Sprintf("%.4f, %.4f", pos.Lat, pos.Lng),
		AreaLabel: unknownArea,
	}
}
