package ai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/windpalette/internal/kv"
)

// fakeCompleter counts calls and replies with a fixed text.
type fakeCompleter struct {
	reply string
	err   error
	delay time.Duration
	calls atomic.Int32
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.reply, f.err
}

func TestNormalizePrompt(t *testing.T) {
	assert.Equal(t, "calm ocean sunset", NormalizePrompt("  Calm\tOCEAN \n sunset "))
	assert.Equal(t, "", NormalizePrompt("   "))
	assert.Len(t, []rune(NormalizePrompt(strings.Repeat("é", 300))), MaxPromptLength)
}

func TestCacheKey(t *testing.T) {
	key := CacheKey("calm ocean")
	assert.True(t, strings.HasPrefix(key, "ai:palette:"))
	assert.Len(t, key, len("ai:palette:")+64)
	assert.Equal(t, key, CacheKey(NormalizePrompt("CALM   ocean")))
}

func TestServiceSuggestCaches(t *testing.T) {
	client := &fakeCompleter{reply: "#0ea5e9 #6366f1 #f59e0b #e11d48"}
	svc := NewService(client, kv.NewMemoryStore(), time.Hour)

	first, err := svc.Suggest(context.Background(), "Calm Ocean")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, []string{"#0ea5e9", "#6366f1", "#f59e0b", "#e11d48"}, first.Colors)
	assert.Equal(t, "#0ea5e9", first.Theme.Primary)
	assert.Equal(t, "#6366f1", first.Theme.Secondary)
	assert.Equal(t, "#f59e0b", first.Theme.Accent)

	second, err := svc.Suggest(context.Background(), "  calm   ocean ")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Colors, second.Colors)
	assert.Equal(t, int32(1), client.calls.Load())
}

func TestServiceSuggestSingleColor(t *testing.T) {
	svc := NewService(&fakeCompleter{reply: "#123456"}, kv.NewMemoryStore(), 0)
	s, err := svc.Suggest(context.Background(), "mono")
	require.NoError(t, err)
	assert.Equal(t, "#123456", s.Theme.Primary)
	assert.Empty(t, s.Theme.Secondary)
}

func TestServiceSuggestErrors(t *testing.T) {
	svc := NewService(&fakeCompleter{reply: "no colors here"}, kv.NewMemoryStore(), time.Hour)
	_, err := svc.Suggest(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNoColors)

	_, err = svc.Suggest(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyPrompt)

	upstream := NewService(&fakeCompleter{err: ErrUpstream}, kv.NewMemoryStore(), time.Hour)
	_, err = upstream.Suggest(context.Background(), "anything")
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestServiceSuggestFailuresAreNotCached(t *testing.T) {
	client := &fakeCompleter{reply: "nothing"}
	store := kv.NewMemoryStore()
	svc := NewService(client, store, time.Hour)

	svc.Suggest(context.Background(), "retry me")
	_, ok, _ := store.Get(context.Background(), CacheKey("retry me"))
	assert.False(t, ok)
}

func TestServiceSuggestCollapsesConcurrentPrompts(t *testing.T) {
	client := &fakeCompleter{reply: "#0ea5e9", delay: 100 * time.Millisecond}
	svc := NewService(client, kv.NewMemoryStore(), time.Hour)

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := svc.Suggest(context.Background(), "same prompt")
			assert.NoError(t, err)
			if s != nil {
				assert.Equal(t, []string{"#0ea5e9"}, s.Colors)
			}
		}()
	}
	wg.Wait()

	assert.Less(t, client.calls.Load(), int32(5))
}
