package spamcheck

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastChecksBasicOps(t *testing.T) {
	h := NewLastChecks(5)
	c1 := Check{Msg: Message{ID: "1", Text: "msg1"}, Verdict: Verdict{IsSpam: true, Confidence: 0.9}}
	c2 := Check{Msg: Message{ID: "2", Text: "msg2"}}
	c3 := Check{Msg: Message{ID: "3", Text: "msg3"}, Verdict: Verdict{Reasons: []string{"reason"}}}

	h.Push(c1)
	h.Push(c2)
	h.Push(c3)

	res := h.Last(3)
	require.Len(t, res, 3)
	assert.Equal(t, []Check{c1, c2, c3}, res)
	assert.Equal(t, 5, h.Size())
}

func TestLastChecksOverflow(t *testing.T) {
	h := NewLastChecks(2)
	for i := 1; i <= 3; i++ {
		h.Push(Check{Msg: Message{ID: fmt.Sprintf("%d", i)}})
	}

	res := h.Last(3)
	require.Len(t, res, 2)
	assert.Equal(t, "2", res[0].Msg.ID)
	assert.Equal(t, "3", res[1].Msg.ID)
}

func TestLastChecksMostRecent(t *testing.T) {
	h := NewLastChecks(5)
	h.Push(Check{Msg: Message{ID: "1"}})
	h.Push(Check{Msg: Message{ID: "2"}})

	res := h.Last(1)
	require.Len(t, res, 1)
	assert.Equal(t, "2", res[0].Msg.ID)
}

func TestLastChecksEmpty(t *testing.T) {
	h := NewLastChecks(5)
	assert.Empty(t, h.Last(1))
	assert.Empty(t, h.Last(0))
	assert.Equal(t, 1, NewLastChecks(0).Size())
}

func TestLastChecksConcurrent(t *testing.T) {
	h := NewLastChecks(5)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 100 {
			h.Push(Check{Msg: Message{ID: "1"}})
		}
	}()
	go func() {
		defer wg.Done()
		for range 100 {
			assert.LessOrEqual(t, len(h.Last(5)), 5)
		}
	}()
	wg.Wait()
	assert.Len(t, h.Last(10), 5)
}
