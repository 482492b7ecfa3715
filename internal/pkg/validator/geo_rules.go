package validator

// Inclusive WGS84 coordinate bounds, in degrees.
const (
	// LatitudeMin is the South Pole.
	LatitudeMin = -90.0
	// LatitudeMax is the North Pole.
	LatitudeMax = 90.0
	// LongitudeMin is the antimeridian, measured westward from Greenwich.
	LongitudeMin = -180.0
	// LongitudeMax is the antimeridian, measured eastward from Greenwich.
	LongitudeMax = 180.0
)

// CheckCoordinates validates a latitude/longitude pair under "<prefix>.Lat"
// and "<prefix>.Lon". Both axes are checked even when the first one fails.
func CheckCoordinates(errs Errors, prefix string, lat, lon float64) {
	latField := Path(prefix, "Lat")
	lonField := Path(prefix, "Lon")

	errs.Collect(latField, CheckRange(latField, lat, LatitudeMin, LatitudeMax))
	errs.Collect(lonField, CheckRange(lonField, lon, LongitudeMin, LongitudeMax))
}
