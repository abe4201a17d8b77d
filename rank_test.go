package hospitalrank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRank(t *testing.T) {
	t.Run("sentinels", func(t *testing.T) {
		r, err := ParseRank("best")
		require.NoError(t, err)
		assert.Equal(t, Best, r)

		r, err = ParseRank(" Worst ")
		require.NoError(t, err)
		assert.Equal(t, Worst, r)
	})

	t.Run("positions", func(t *testing.T) {
		r, err := ParseRank("7")
		require.NoError(t, err)
		assert.Equal(t, "7", r.String())
	})

	t.Run("rejections", func(t *testing.T) {
		for _, s := range []string{"", "bestest", "1.5", "0", "-3", "NA"} {
			_, err := ParseRank(s)
			assert.ErrorIs(t, err, ErrInvalidRank, "ParseRank(%q)", s)
		}
	})
}

func TestRankAt(t *testing.T) {
	_, err := RankAt(0)
	assert.ErrorIs(t, err, ErrInvalidRank)

	r, err := RankAt(3)
	require.NoError(t, err)
	assert.Equal(t, "3", r.String())
}

func TestSelectRank(t *testing.T) {
	rate := func(f float64) *float64 { return &f }
	view := []RatedHospital{
		{Hospital: "A", Rate: rate(8.1)},
		{Hospital: "B", Rate: rate(9.0)},
		{Hospital: "C", Rate: rate(9.4)},
		{Hospital: "D", Rate: rate(10.2)},
		{Hospital: "E", Rate: rate(12.9)},
	}

	t.Run("best is position 1", func(t *testing.T) {
		got := SelectRank(view, Best)
		require.NotNil(t, got)
		assert.Equal(t, "A", *got)
	})

	t.Run("worst is the last position", func(t *testing.T) {
		got := SelectRank(view, Worst)
		require.NotNil(t, got)
		assert.Equal(t, "E", *got)
	})

	t.Run("explicit position", func(t *testing.T) {
		r, err := RankAt(3)
		require.NoError(t, err)
		got := SelectRank(view, r)
		require.NotNil(t, got)
		assert.Equal(t, "C", *got)
	})

	t.Run("position beyond the view is nil", func(t *testing.T) {
		r, err := RankAt(6)
		require.NoError(t, err)
		assert.Nil(t, SelectRank(view, r))
	})

	t.Run("empty view is nil for every rank", func(t *testing.T) {
		assert.Nil(t, SelectRank(nil, Best))
		assert.Nil(t, SelectRank(nil, Worst))
		r, err := RankAt(1)
		require.NoError(t, err)
		assert.Nil(t, SelectRank(nil, r))
	})
}
