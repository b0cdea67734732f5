package reminder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBucketForBoundaries(t *testing.T) {
	cases := []struct {
		uvIndex  float64
		expected Bucket
	}{
		{0, BucketLow},
		{1, BucketLow},
		{2.9, BucketLow},
		{3, BucketModerate},
		{5.9, BucketModerate},
		{6, BucketHigh},
		{7.9, BucketHigh},
		{8, BucketVeryHigh},
		{10.9, BucketVeryHigh},
		{11, BucketExtreme},
		{50, BucketExtreme},
	}
	for _, tc := range cases {
		require.Equal(t, tc.expected, BucketFor(tc.uvIndex), "uv %v", tc.uvIndex)
	}
}

func TestIntervalMinutes(t *testing.T) {
	table := DefaultReapplicationTable()

	require.Equal(t, 80, IntervalMinutes(9, 5, table))
	require.Equal(t, 120, IntervalMinutes(1.5, 1, table))
	require.Equal(t, 10, IntervalMinutes(12, 1, table))
	require.Equal(t, 200, IntervalMinutes(2, 6, table))
	require.Equal(t, 80, IntervalMinutes(11, 6, table))
}

func TestIntervalMinutesFallsBackToTypeThree(t *testing.T) {
	table := DefaultReapplicationTable()

	require.Equal(t, IntervalMinutes(9, 3, table), IntervalMinutes(9, 0, table))
	require.Equal(t, IntervalMinutes(4, 3, table), IntervalMinutes(4, 7, table))
}

func TestIntervalsShortenAsUVRises(t *testing.T) {
	table := DefaultReapplicationTable()
	for fitzType := 1; fitzType <= 6; fitzType++ {
		previous := table[fitzType][BucketLow]
		for _, bucket := range []Bucket{BucketModerate, BucketHigh, BucketVeryHigh, BucketExtreme} {
			require.Less(t, table[fitzType][bucket], previous, "type %d bucket %s", fitzType, bucket)
			previous = table[fitzType][bucket]
		}
	}
}

func TestIntervalsLengthenWithDarkerSkin(t *testing.T) {
	table := DefaultReapplicationTable()
	for _, bucket := range []Bucket{BucketLow, BucketModerate, BucketHigh, BucketVeryHigh, BucketExtreme} {
		for fitzType := 2; fitzType <= 6; fitzType++ {
			require.GreaterOrEqual(t, table[fitzType][bucket], table[fitzType-1][bucket],
				"type %d bucket %s", fitzType, bucket)
		}
	}
}

func TestLevelFor(t *testing.T) {
	require.Equal(t, "Low", LevelFor(0))
	require.Equal(t, "Low", LevelFor(2.9))
	require.Equal(t, "Moderate", LevelFor(3))
	require.Equal(t, "High", LevelFor(6))
	require.Equal(t, "Very High", LevelFor(8))
	require.Equal(t, "Extreme", LevelFor(11))
}
