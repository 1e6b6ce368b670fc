package geocoding

import "github.com/samber/lo"

// Defaults used when a reverse geocoding feature carries none of the
// preferred fields.
const (
	unknownLocation = "Unknown Location"
	unknownArea     = "Unknown Area"
)

// featureAddress holds the named optional fields of one reverse geocoding
// feature, parsed out of the provider's loosely shaped response.
type featureAddress struct {
	Name          string `json:"name"`
	Street        string `json:"street"`
	Neighbourhood string `json:"neighbourhood"`
	Suburb        string `json:"suburb"`
	District      string `json:"district"`
	City          string `json:"city"`
	State         string `json:"state"`
	Formatted     string `json:"formatted"`
}

// shortName picks the most specific area field available:
// neighbourhood, then suburb (locality), district (borough), city
// (county), state (region).
func shortName(a featureAddress) string {
	if v := lo.CoalesceOrEmpty(a.Neighbourhood, a.Suburb, a.District, a.City, a.State); v != "" {
		return v
	}
	return unknownLocation
}

// areaLabel picks the most specific label field available: the feature
// name, then the street, then the provider's formatted label.
func areaLabel(a featureAddress) string {
	if v := lo.CoalesceOrEmpty(a.Name, a.Street, a.Formatted); v != "" {
		return v
	}
	return unknownArea
}
