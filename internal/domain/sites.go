package domain

// SiteList is an ordered list of display locations for impact scenarios.
type SiteList []Geo

// DefaultSites returns the fixed display locations, in assignment order:
// NYC, LA, London, Tokyo, Paris, Sydney, Mexico City, Moscow, Delhi,
// Beijing.
func DefaultSites() SiteList {
	return SiteList{
		{Lat: 40.7128, Lon: -74.0060},  // New York City
		{Lat: 34.0522, Lon: -118.2437}, // Los Angeles
		{Lat: 51.5074, Lon: -0.1278},   // London
		{Lat: 35.6762, Lon: 139.6503},  // Tokyo
		{Lat: 48.8566, Lon: 2.3522},    // Paris
		{Lat: -33.8688, Lon: 151.2093}, // Sydney
		{Lat: 19.4326, Lon: -99.1332},  // Mexico City
		{Lat: 55.7558, Lon: 37.6173},   // Moscow
		{Lat: 28.6139, Lon: 77.2090},   // Delhi
		{Lat: 39.9042, Lon: 116.4074},  // Beijing
	}
}

// ForRank maps a 0-based rank to its display location, cycling through the
// list when the rank exceeds its length. With more selected objects than
// sites, multiple objects share a location. Panics on an empty list.
func (s SiteList) ForRank(rank int) Geo {
	return s[rank%len(s)]
}
