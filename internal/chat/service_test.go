package chat

import (
	"sync"
	"testing"
	"time"

	"github.com/abuhisan/coffee-backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingScheduler runs nothing until flush, so tests see the state
// before and after the typing delay.
type recordingScheduler struct {
	mu     sync.Mutex
	delays []time.Duration
	fns    []func()
}

func (r *recordingScheduler) schedule(d time.Duration, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delays = append(r.delays, d)
	r.fns = append(r.fns, fn)
}

func (r *recordingScheduler) flush() {
	r.mu.Lock()
	fns := r.fns
	r.fns = nil
	r.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func newTestService(min, max time.Duration) (*Service, *recordingScheduler) {
	sch := &recordingScheduler{}
	svc := NewService(newResponder(), time.Hour, min, max, logger.NewNop()).WithScheduler(sch.schedule)
	return svc, sch
}

func TestSubmit_ReplyArrivesAfterDelay(t *testing.T) {
	svc, sch := newTestService(700*time.Millisecond, 1500*time.Millisecond)

	msg, err := svc.Submit("s1", "  أبغى شي بارد  ")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, msg.Role)
	assert.Equal(t, "أبغى شي بارد", msg.Text)

	require.Len(t, svc.Transcript("s1"), 1)
	require.Len(t, sch.delays, 1)
	assert.GreaterOrEqual(t, sch.delays[0], 700*time.Millisecond)
	assert.LessOrEqual(t, sch.delays[0], 1500*time.Millisecond)

	sch.flush()

	tr := svc.Transcript("s1")
	require.Len(t, tr, 2)
	assert.Equal(t, RoleBot, tr[1].Role)
	assert.Equal(t, IntentCold, tr[1].Intent)
	assert.Equal(t, msg.ID, tr[1].ReplyTo)
	assert.Len(t, tr[1].Products, 4)
}

func TestSubmit_OneReplyPerMessage(t *testing.T) {
	svc, sch := newTestService(0, 0)

	for _, text := range []string{"hello", "menu", "qwerty"} {
		_, err := svc.Submit("s1", text)
		require.NoError(t, err)
	}
	sch.flush()

	tr := svc.Transcript("s1")
	require.Len(t, tr, 6)
	bots := 0
	for _, m := range tr {
		if m.Role == RoleBot {
			bots++
		}
	}
	assert.Equal(t, 3, bots)
	assert.Empty(t, svc.Transcript("s2"))
}

func TestSubmit_EmptyMessage(t *testing.T) {
	svc, sch := newTestService(0, 0)

	_, err := svc.Submit("s1", "   ")

	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, sch.delays)
	assert.Empty(t, svc.Transcript("s1"))
}

func TestSubmit_RealTimer(t *testing.T) {
	svc := NewService(newResponder(), time.Hour, time.Millisecond, 5*time.Millisecond, logger.NewNop())

	_, err := svc.Submit("s1", "شكرا")
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return len(svc.Transcript("s1")) == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestTypingDelay_InvertedBoundsUseMin(t *testing.T) {
	svc := NewService(newResponder(), time.Hour, 50*time.Millisecond, 10*time.Millisecond, logger.NewNop())

	assert.Equal(t, 50*time.Millisecond, svc.typingDelay())
}
