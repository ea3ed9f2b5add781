package seating

// Exposure fractions assigned to the sunny and the shaded side
const (
	MajorityExposure = 0.7
	MinorityExposure = 0.3
)

// Exposure is the modelled share of the flight each side of the cabin spends in direct sun
type Exposure struct {
	LeftFraction  float64 `json:"left_fraction"`
	RightFraction float64 `json:"right_fraction"`
}

var (
	leftSunny  = Exposure{LeftFraction: MajorityExposure, RightFraction: MinorityExposure}
	rightSunny = Exposure{LeftFraction: MinorityExposure, RightFraction: MajorityExposure}
)

// quadrantRule decides exposure for bearings in [minBearing, minBearing+90)
type quadrantRule struct {
	minBearing float64
	sunTest    func(azimuth float64) bool
	ifTrue     Exposure
	ifFalse    Exposure
}

func sunInWesternHalf(az float64) bool { return az > 180 && az < 360 }
func sunInEasternHalf(az float64) bool { return az > 0 && az < 180 }

// Quadrant table. Not a single formula: the boundary tests are open intervals, so an azimuth
// of exactly 0 or 180 always falls to the ifFalse branch.
var quadrantRules = [4]quadrantRule{
	{minBearing: 0, sunTest: sunInWesternHalf, ifTrue: leftSunny, ifFalse: rightSunny},
	{minBearing: 90, sunTest: sunInEasternHalf, ifTrue: leftSunny, ifFalse: rightSunny},
	{minBearing: 180, sunTest: sunInEasternHalf, ifTrue: rightSunny, ifFalse: leftSunny},
	{minBearing: 270, sunTest: sunInWesternHalf, ifTrue: rightSunny, ifFalse: leftSunny},
}

// ClassifyExposure maps a bearing in [0, 360) and the mid-flight solar azimuth to
// left/right exposure fractions
func ClassifyExposure(bearing, midflightAzimuth float64) Exposure {
	rule := quadrantRules[3]
	for i := 0; i < 3; i++ {
		if bearing < quadrantRules[i+1].minBearing {
			rule = quadrantRules[i]
			break
		}
	}

	if rule.sunTest(midflightAzimuth) {
		return rule.ifTrue
	}
	return rule.ifFalse
}
