package gateway

import (
	"context"
	"fmt"
	"testing"

	"github.com/bobbot/osrs-api/internal/models"
	"github.com/bobbot/osrs-api/internal/osrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer(t *testing.T) {
	want := &models.PlayerStats{Name: "Zezima", Mode: "main"}
	svc := New(&fakeStats{stats: want}, nil, nil, nil, Options{})

	got, err := svc.Player(context.Background(), "Zezima")
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestPlayer_NotFound(t *testing.T) {
	upstream := fmt.Errorf("%w: hiscores: request failed with status code 404", osrs.ErrPlayerNotFound)
	svc := New(&fakeStats{err: upstream}, nil, nil, nil, Options{})

	_, err := svc.Player(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Player not found", err.Error())
}

func TestPlayer_OtherError(t *testing.T) {
	svc := New(&fakeStats{err: errUpstream}, nil, nil, nil, Options{})

	_, err := svc.Player(context.Background(), "Zezima")
	assert.ErrorIs(t, err, errUpstream)
	assert.NotErrorIs(t, err, ErrNotFound)
}
