package domain

import (
	"encoding/json"
	"math"
	"strings"
)

// RiskCode is an SPC convective outlook DN value.
type RiskCode int

// UnmarshalJSON accepts any whole JSON number in int32 range, so 5 and 5.0
// both decode to 5. Anything else, including strings, fractions, and
// out-of-range numbers, decodes to 0, which has no label.
func (c *RiskCode) UnmarshalJSON(data []byte) error {
	*c = 0
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil //nolint:nilerr // an unusable DN only fails to escalate
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return nil
	}
	*c = RiskCode(f)
	return nil
}

// RiskLabel is the categorical SPC risk abbreviation. The zero value
// RiskNone means no label is available.
type RiskLabel string

const (
	RiskNone RiskLabel = ""
	RiskTSTM RiskLabel = "TSTM"
	RiskMRGL RiskLabel = "MRGL"
	RiskSLGT RiskLabel = "SLGT"
	RiskENH  RiskLabel = "ENH"
	RiskMDT  RiskLabel = "MDT"
	RiskHIGH RiskLabel = "HIGH"
)

// riskLabels is total only over the SPC DN values; gaps (1, 7) are unmapped.
var riskLabels = map[RiskCode]RiskLabel{
	2: RiskTSTM,
	3: RiskMRGL,
	4: RiskSLGT,
	5: RiskENH,
	6: RiskMDT,
	8: RiskHIGH,
}

// MapRiskCodeToLabel returns the label for an SPC DN value. The boolean is
// false for any code outside {2,3,4,5,6,8}.
func MapRiskCodeToLabel(code RiskCode) (RiskLabel, bool) {
	label, ok := riskLabels[code]
	return label, ok
}

// ParseRiskLabel parses a risk abbreviation case-insensitively.
// Empty input and unknown abbreviations return (RiskNone, false).
func ParseRiskLabel(s string) (RiskLabel, bool) {
	switch RiskLabel(strings.ToUpper(strings.TrimSpace(s))) {
	case RiskTSTM:
		return RiskTSTM, true
	case RiskMRGL:
		return RiskMRGL, true
	case RiskSLGT:
		return RiskSLGT, true
	case RiskENH:
		return RiskENH, true
	case RiskMDT:
		return RiskMDT, true
	case RiskHIGH:
		return RiskHIGH, true
	default:
		return RiskNone, false
	}
}

func (l RiskLabel) String() string {
	if l == RiskNone {
		return "null"
	}
	return string(l)
}
