package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindPowerUsed:        "power_used",
		KindRested:           "rested",
		KindGadgetUsed:       "gadget_used",
		KindExhausted:        "exhausted",
		KindInvalidSelection: "invalid_selection",
		Kind(42):             "unknown",
	}
	for k, want := range cases {
		assert.Equal(t, want, k.String())
	}
}

func TestNotificationErr(t *testing.T) {
	n := New("Batman", ActionUsePower, KindExhausted, "tired", 0, 0)
	assert.True(t, n.Failed())
	assert.True(t, errors.Is(n.Err(), ErrExhausted))
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.Time.IsZero())

	n = New("Batman", ActionUseGadget, KindInvalidSelection, "nope", 100, 0)
	assert.True(t, errors.Is(n.Err(), ErrInvalidSelection))

	n = New("Batman", ActionRest, KindRested, "rested", 100, 0)
	assert.False(t, n.Failed())
	assert.NoError(t, n.Err())
}

func TestMultiAndRecorder(t *testing.T) {
	r1 := &Recorder{}
	r2 := &Recorder{}
	calls := 0
	m := NewMulti(r1, nil, r2, NotifierFunc(func(Notification) { calls++ }))
	require.Len(t, m, 3)

	m.Notify(New("Logan", ActionRest, KindRested, "a", 100, 0))
	m.Notify(New("Logan", ActionRest, KindRested, "b", 100, 0))

	assert.Len(t, r1.Notifications, 2)
	assert.Len(t, r2.Notifications, 2)
	assert.Equal(t, 2, calls)
	last, ok := r1.Last()
	require.True(t, ok)
	assert.Equal(t, "b", last.Message)

	r1.Reset()
	_, ok = r1.Last()
	assert.False(t, ok)
}
