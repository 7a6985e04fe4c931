package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thatcatcamp/windpalette/internal/kv"
	"github.com/thatcatcamp/windpalette/internal/themes"
	"golang.org/x/sync/singleflight"
)

// MaxPromptLength is the longest prompt sent upstream, in runes.
const MaxPromptLength = 200

const cacheKeyPrefix = "ai:palette:"

var (
	// ErrEmptyPrompt is returned for a blank prompt.
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrNoColors is returned when the reply holds no usable colors.
	ErrNoColors = errors.New("no colors in ai reply")
)

// Completer returns the model's reply to a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Suggestion is a palette proposed for a prompt.
type Suggestion struct {
	Colors []string           `json:"colors"`
	Theme  themes.ThemeColors `json:"theme"`
	Cached bool               `json:"cached"`
}

// Service caches suggestions and collapses concurrent identical prompts.
type Service struct {
	client Completer
	store  kv.Store
	ttl    time.Duration
	group  singleflight.Group
}

// NewService creates a service. ttl <= 0 caches without expiry.
func NewService(client Completer, store kv.Store, ttl time.Duration) *Service {
	return &Service{client: client, store: store, ttl: ttl}
}

// NormalizePrompt trims, lowercases and collapses whitespace, then
// truncates to MaxPromptLength runes.
func NormalizePrompt(prompt string) string {
	p := strings.Join(strings.Fields(strings.ToLower(prompt)), " ")
	if r := []rune(p); len(r) > MaxPromptLength {
		p = strings.TrimSpace(string(r[:MaxPromptLength]))
	}
	return p
}

// CacheKey is the kv key for a normalized prompt.
func CacheKey(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func newSuggestion(colors []string, cached bool) *Suggestion {
	s := &Suggestion{Colors: colors, Cached: cached}
	if len(colors) > 0 {
		s.Theme.Primary = colors[0]
	}
	if len(colors) > 1 {
		s.Theme.Secondary = colors[1]
	}
	if len(colors) > 2 {
		s.Theme.Accent = colors[2]
	}
	return s
}

// Suggest returns a palette for prompt, from cache when possible.
func (s *Service) Suggest(ctx context.Context, prompt string) (*Suggestion, error) {
	normalized := NormalizePrompt(prompt)
	if normalized == "" {
		return nil, ErrEmptyPrompt
	}
	key := CacheKey(normalized)

	if cached, ok, err := s.store.Get(ctx, key); err != nil {
		log.Warn().Err(err).Msg("AI palette cache read failed")
	} else if ok {
		if colors := strings.Split(cached, ","); len(colors) > 0 && colors[0] != "" {
			return newSuggestion(colors, true), nil
		}
	}

	// Detached so one caller giving up does not fail the others
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(key, func() (any, error) {
		reply, err := s.client.Complete(shared, normalized)
		if err != nil {
			log.Warn().Err(err).Msg("AI palette request failed")
			return nil, err
		}

		colors := ExtractColors(reply)
		if len(colors) == 0 {
			log.Warn().Str("reply", reply).Msg("AI reply had no colors")
			return nil, ErrNoColors
		}

		if err := s.store.Set(shared, key, strings.Join(colors, ","), s.ttl); err != nil {
			log.Warn().Err(err).Msg("AI palette cache write failed")
		}
		return colors, nil
	})
	if err != nil {
		return nil, err
	}
	return newSuggestion(v.([]string), false), nil
}
