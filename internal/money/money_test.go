package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	m, err := FromString("2500.00")
	require.NoError(t, err)
	assert.Equal(t, "2500", m.String())
	assert.Equal(t, "2500.00", m.StringFixed())

	_, err = FromString("not-a-number")
	assert.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	a := MustFromString("100.10")
	b := MustFromString("0.90")

	assert.Equal(t, "101", a.Add(b).String())
	assert.Equal(t, "99.2", a.Sub(b).String())
	assert.True(t, a.Sub(a).IsZero())
}

func TestAddSubRoundTrip(t *testing.T) {
	start := MustFromString("3500.00")
	x := MustFromString("123.45")

	assert.True(t, start.Add(x).Sub(x).Equal(start))
}

func TestComparisons(t *testing.T) {
	small := MustFromString("1.00")
	big := MustFromString("2.00")

	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))
	assert.True(t, small.LessThan(big))
	assert.True(t, small.Equal(MustFromString("1")))
	assert.True(t, MustFromString("-5").IsNegative())
	assert.True(t, big.IsPositive())
}

func TestPercent(t *testing.T) {
	balance := MustFromString("2500.00")
	rate := MustFromString("4.5")

	// 2500 * 4.5 / 100 = 112.5
	assert.Equal(t, "112.5", balance.Percent(rate).String())

	// Zero rate yields zero interest.
	assert.True(t, balance.Percent(Zero()).IsZero())
}

func TestPercentRoundsHalfUp(t *testing.T) {
	// 0.0000000000333... truncates to ten digits; the eleventh digit (3)
	// rounds down, while a half rounds up.
	m := MustFromString("0.00000000015")
	got := m.Percent(MustFromString("100"))
	assert.Equal(t, "0.0000000002", got.String())
}

func TestJSONRoundTrip(t *testing.T) {
	m := MustFromString("4500.00")
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equal(back))
}
