package weather

import "alpsconnect/models"

// ConditionForCode buckets a WMO weather interpretation code (WW) into a
// display condition. Ranges are disjoint; unknown codes read as clear.
func ConditionForCode(code int) models.WeatherCondition {
	switch {
	case code == 0 || code == 1:
		return models.ConditionClear
	case code == 2 || code == 3:
		return models.ConditionCloudy
	case code >= 45 && code <= 48:
		return models.ConditionFog
	case code >= 51 && code <= 67:
		return models.ConditionRain
	case code >= 71 && code <= 77:
		return models.ConditionSnow
	case code >= 80 && code <= 82:
		return models.ConditionShowers
	case code >= 95:
		return models.ConditionThunderstorm
	default:
		return models.ConditionClear
	}
}
