package spatialmine

import (
	"math"
	"strconv"
	"strings"
)

// Unbounded is the default for maxLength/maxGap: no limit.
const Unbounded = math.MaxInt

// convertMinSup converts a user-supplied minSup (int, float64 or string) to
// an absolute sequence count, per spec §4.5:
//   - int: absolute count.
//   - float64: relative fraction of the database size, floored.
//   - string: parsed as float if it contains a decimal point (relative),
//     otherwise as int (absolute).
func convertMinSup(raw any, dbSize int) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		return int(math.Floor(float64(dbSize) * v)), nil
	case string:
		if strings.Contains(v, ".") {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0, parameterRange("minSup: " + err.Error())
			}
			return int(math.Floor(float64(dbSize) * f)), nil
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, parameterRange("minSup: " + err.Error())
		}
		return i, nil
	default:
		return 0, parameterRange("minSup: unsupported type")
	}
}

func validateParams(minSup, maxLength, maxGap int) error {
	if minSup <= 0 {
		return parameterRange("minSup must be positive")
	}
	if maxLength < 0 {
		return parameterRange("maxLength must not be negative")
	}
	if maxGap < 0 {
		return parameterRange("maxGap must not be negative")
	}
	return nil
}
