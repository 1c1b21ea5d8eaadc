package mpt

// Classification is the clinical read of a measured phonation time on the
// Emergency Severity Index scale.
type Classification struct {
	Urgency  string `json:"urgency"`
	EsiLevel int    `json:"esi_level"`
	Category string `json:"category"`
	Action   string `json:"action"`
	Color    string `json:"color"`
}

// Classify maps a phonation duration in seconds onto the clinical urgency
// scale. Buckets are half-open at {8, 10, 15, 20}; a boundary value belongs
// to the bucket above it.
func Classify(seconds float64) Classification {
	switch {
	case seconds < 8:
		return Classification{
			Urgency:  "IMMEDIATE",
			EsiLevel: 1,
			Category: "Severe respiratory compromise",
			Action:   "Immediate medical intervention required",
			Color:    "RED",
		}

	case seconds < 10:
		return Classification{
			Urgency:  "URGENT",
			EsiLevel: 2,
			Category: "Significant respiratory impairment",
			Action:   "Urgent medical evaluation needed",
			Color:    "ORANGE",
		}

	case seconds < 15:
		return Classification{
			Urgency:  "CONCERNING",
			EsiLevel: 2,
			Category: "Below normal respiratory reserve",
			Action:   "Medical evaluation recommended",
			Color:    "YELLOW",
		}

	case seconds < 20:
		return Classification{
			Urgency:  "BORDERLINE",
			EsiLevel: 3,
			Category: "Lower end of normal",
			Action:   "Monitor for changes",
			Color:    "YELLOW",
		}

	default:
		return Classification{
			Urgency:  "NORMAL",
			EsiLevel: 4,
			Category: "Normal respiratory reserve",
			Action:   "No immediate concerns",
			Color:    "GREEN",
		}
	}
}
