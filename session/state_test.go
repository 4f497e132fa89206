package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateHappyPath(t *testing.T) {
	ss := StateReading
	ss = ss.ReceivedRequest()
	assert.Equal(t, StateParsing, ss)
	ss = ss.Parsed()
	assert.Equal(t, StateRouting, ss)
	ss = ss.Routed()
	assert.Equal(t, StateReadingFile, ss)
	ss = ss.ReadFile()
	assert.Equal(t, StateWriting, ss)
	assert.False(t, ss.Terminal())
	ss = ss.Wrote()
	assert.Equal(t, StateDone, ss)
	assert.True(t, ss.Terminal())
}

func TestStateRejected(t *testing.T) {
	assert.Equal(t, StateWriting, StateParsing.Rejected())
	assert.Equal(t, StateFailed, StateReadingFile.Failed())
	assert.True(t, StateFailed.Terminal())
}

func TestStateWrongTransition(t *testing.T) {
	assert.Panics(t, func() { StateReading.Parsed() })
	assert.Panics(t, func() { StateDone.Wrote() })
	assert.Panics(t, func() { StateRouting.Rejected() })
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "ReadingFile", StateReadingFile.String())
	assert.Equal(t, "State(99)", State(99).String())
	assert.Equal(t, "TraversalRejected", KindTraversalRejected.String())
}
