package reminder

// Bucket identifies a UV-index sub-range in the reapplication table.
type Bucket string

const (
	BucketLow      Bucket = "1-2"
	BucketModerate Bucket = "3-5"
	BucketHigh     Bucket = "6-7"
	BucketVeryHigh Bucket = "8-10"
	BucketExtreme  Bucket = "11+"
)

// fallbackFitzType is used when a Fitzpatrick type is outside the table's
// domain. Defensive default, not a modeled error.
const fallbackFitzType = 3

// ReapplicationTable maps Fitzpatrick type to reapplication minutes per UV
// bucket.
type ReapplicationTable map[int]map[Bucket]int

// DefaultReapplicationTable returns the fixed 6x5 guideline table.
func DefaultReapplicationTable() ReapplicationTable {
	return ReapplicationTable{
		1: {BucketLow: 120, BucketModerate: 60, BucketHigh: 40, BucketVeryHigh: 20, BucketExtreme: 10},
		2: {BucketLow: 120, BucketModerate: 80, BucketHigh: 60, BucketVeryHigh: 30, BucketExtreme: 20},
		3: {BucketLow: 180, BucketModerate: 100, BucketHigh: 80, BucketVeryHigh: 40, BucketExtreme: 30},
		4: {BucketLow: 180, BucketModerate: 120, BucketHigh: 100, BucketVeryHigh: 60, BucketExtreme: 40},
		5: {BucketLow: 200, BucketModerate: 140, BucketHigh: 120, BucketVeryHigh: 80, BucketExtreme: 60},
		6: {BucketLow: 200, BucketModerate: 160, BucketHigh: 140, BucketVeryHigh: 100, BucketExtreme: 80},
	}
}

// BucketFor selects the UV bucket by descending threshold check. The top
// bucket is unbounded.
func BucketFor(uvIndex float64) Bucket {
	switch {
	case uvIndex >= 11:
		return BucketExtreme
	case uvIndex >= 8:
		return BucketVeryHigh
	case uvIndex >= 6:
		return BucketHigh
	case uvIndex >= 3:
		return BucketModerate
	default:
		return BucketLow
	}
}

// IntervalMinutes returns the recommended reapplication interval for the
// given UV index and Fitzpatrick type.
func IntervalMinutes(uvIndex float64, fitzType int, table ReapplicationTable) int {
	row, ok := table[fitzType]
	if !ok {
		row = table[fallbackFitzType]
	}
	return row[BucketFor(uvIndex)]
}

// LevelFor maps a UV index to its display label. Kept separate from the
// bucket selection: the labels and the interval buckets may be edited
// independently.
func LevelFor(uvIndex float64) string {
	switch {
	case uvIndex >= 11:
		return "Extreme"
	case uvIndex >= 8:
		return "Very High"
	case uvIndex >= 6:
		return "High"
	case uvIndex >= 3:
		return "Moderate"
	default:
		return "Low"
	}
}
