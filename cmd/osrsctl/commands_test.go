package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bobbot/osrs-api/internal/client"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCommand(t *testing.T, handler http.HandlerFunc) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	api = client.New(srv.URL, 5*time.Second)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestRunPlayer_InvalidUsername(t *testing.T) {
	cmd, _ := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	err := runPlayer(cmd, []string{"this name is far too long"})
	assert.ErrorContains(t, err, "not a valid OSRS username")
}

func TestRunPlayer_UnknownSkill(t *testing.T) {
	cmd, _ := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})
	skillFlag = "basketweaving"
	t.Cleanup(func() { skillFlag = "" })

	err := runPlayer(cmd, []string{"Zezima"})
	assert.EqualError(t, err, `unknown skill "basketweaving"`)
}

func TestRunPlayer_SkillAlias(t *testing.T) {
	cmd, out := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/player/Zezima", r.URL.Path)
		w.Write([]byte(`{"name":"Zezima","mode":"main","main":{"skills":{"runecraft":{"rank":7,"level":77,"xp":1500000}},"activities":{}}}`))
	})
	skillFlag = "rc"
	t.Cleanup(func() { skillFlag = "" })

	require.NoError(t, runPlayer(cmd, []string{"Zezima"}))
	assert.Contains(t, out.String(), "Zezima: Runecraft")
	assert.Contains(t, out.String(), "Level:      77")
}

func TestWikiCmd_FallsBackToSearch(t *testing.T) {
	var paths []string
	cmd, out := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/api/wiki/whip":
			w.Write([]byte(`{"title":"whip","url":"https://oldschool.runescape.wiki/w/whip","summary":null,"extract":null}`))
		case "/api/wiki/search/whip":
			w.Write([]byte(`{"title":"Abyssal whip","url":"https://oldschool.runescape.wiki/w/Abyssal_whip","summary":"A whip.","extract":"A whip."}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	require.NoError(t, wikiCmd.RunE(cmd, []string{"whip"}))
	assert.Equal(t, []string{"/api/wiki/whip", "/api/wiki/search/whip"}, paths)
	assert.Contains(t, out.String(), "Abyssal whip")
}

func TestSlayerCmd_NotFound(t *testing.T) {
	cmd, _ := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Slayer master not found"}`))
	})

	err := slayerCmd.RunE(cmd, []string{"chaeldar"})
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
}
