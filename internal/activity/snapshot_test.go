package activity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sparklearn/internal/difficulty"
)

func TestOverride(t *testing.T) {
	var unset Override[int]
	assert.Equal(t, 7, unset.Or(7))
	assert.Nil(t, unset.Ptr())

	zero := Some(0)
	assert.Equal(t, 0, zero.Or(7))
	require.NotNil(t, zero.Ptr())

	n := 3
	assert.Equal(t, Some(3), FromPtr(&n))
	assert.False(t, FromPtr[int](nil).Set)
}

func TestOverride_JSON(t *testing.T) {
	snap := Snapshot{Streak: Some(0), Tier: Some(difficulty.Advanced)}
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"topicsStudied":null,"quizzesCompleted":null,"streak":0,"totalStudyTime":null,"currentLevel":"advanced"}`, string(data))

	var back Snapshot
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, snap, back)
}

func TestPatchApply(t *testing.T) {
	ten := 10
	tier := difficulty.Intermediate
	p := Patch{QuizzesCompleted: &ten, Tier: &tier}
	assert.False(t, p.Empty())
	assert.True(t, Patch{}.Empty())

	got := p.Apply(Snapshot{Streak: Some(2)})
	assert.Equal(t, Some(2), got.Streak)
	assert.Equal(t, Some(10), got.QuizzesCompleted)
	assert.Equal(t, Some(difficulty.Intermediate), got.Tier)
	assert.False(t, got.TopicsStudied.Set)
}
