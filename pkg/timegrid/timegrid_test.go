package timegrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	m, err := ToMinutes("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = ToMinutes("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	for _, bad := range []string{"", "1030", "25:00", "10:75", "ab:cd"} {
		_, err := ToMinutes(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestToDisplay(t *testing.T) {
	assert.Equal(t, "9:00 AM", ToDisplay("09:00"))
	assert.Equal(t, "1:21 PM", ToDisplay("13:21"))
	assert.Equal(t, "", ToDisplay(""))
	assert.Equal(t, "oops", ToDisplay("oops"))
}

func TestOverlapsTouchingEndpoints(t *testing.T) {
	// A batch ending 10:30 and one starting 10:30 do not collide.
	assert.False(t, Overlaps(540, 630, 630, 720))
	assert.False(t, Overlaps(630, 720, 540, 630))
	assert.True(t, Overlaps(540, 631, 630, 720))
	assert.True(t, Overlaps(600, 660, 540, 720))
}

func TestStartMinutes(t *testing.T) {
	m, err := StartMinutes("09:20-09:40")
	require.NoError(t, err)
	assert.Equal(t, 560, m)

	m, err = StartMinutes("14:00")
	require.NoError(t, err)
	assert.Equal(t, 840, m)
}

func TestDaySlots(t *testing.T) {
	slots := DaySlots()
	require.Len(t, slots, 30)
	assert.Equal(t, "09:00-09:20", slots[0])
	assert.Equal(t, "18:40-19:00", slots[len(slots)-1])
}

func TestPartialSpeakingTimesBreakExclusion(t *testing.T) {
	slots := PartialSpeakingTimes()
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		start, err := StartMinutes(slot)
		require.NoError(t, err)
		assert.False(t, start >= breakStart && start < breakEnd, "slot %s starts inside the break", slot)
		assert.LessOrEqual(t, start, 17*60+20, "slot %s starts too late", slot)

		endPart := strings.SplitN(slot, "-", 2)[1]
		end, err := ToMinutes(endPart)
		require.NoError(t, err)
		assert.LessOrEqual(t, end, 17*60+41)
	}

	assert.NotContains(t, slots, "13:40-14:00")
	assert.Contains(t, slots, "13:20-13:40")
	assert.Contains(t, slots, "14:00-14:20")
	assert.Equal(t, "17:20-17:40", slots[len(slots)-1])
}
