package entity

// PlaceRecord is a point of interest as returned fresh by the place-search
// provider. The provider issues no durable identifier; a stable local id is
// derived from the name and coordinate (see the identity package).
type PlaceRecord struct {
	Name       string
	Address    string
	District   string // Administrative district name (adname).
	Coordinate GeoPoint
	Rating     string // Raw provider rating, empty when the provider sent none.
	OpenHours  string
	PhotoRef   string // URL of the first provider photo, empty when absent.
}
