package main

import (
	"testing"

	"github.com/gyaneshwarpardhi/fintrack/internal/config"
)

func TestListenAddr(t *testing.T) {
	cases := []struct {
		name            string
		flag, port, cfg string
		want            string
	}{
		{name: "flag wins", flag: ":7000", port: "6000", cfg: ":5000", want: ":7000"},
		{name: "port env", port: "6000", cfg: ":5000", want: ":6000"},
		{name: "config", cfg: ":5000", want: ":5000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := listenAddr(tc.flag, tc.port, tc.cfg); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRestartNeeded(t *testing.T) {
	base := &config.AppConfig{
		Server: config.ServerConf{Addr: ":5000", CORSOrigins: []string{"*"}},
		Log:    config.LogConf{Level: "info", Format: "text"},
	}

	levelOnly := *base
	levelOnly.Log.Level = "debug"
	levelOnly.Categories.Income = []string{"Salary"}
	if restartNeeded(base, &levelOnly) {
		t.Errorf("level and category changes are live; no restart needed")
	}

	origins := *base
	origins.Server.CORSOrigins = []string{"http://localhost:3000"}
	if !restartNeeded(base, &origins) {
		t.Errorf("cors origin change should need a restart")
	}

	off := false
	legacy := *base
	legacy.Server.LegacyRoutes = &off
	if !restartNeeded(base, &legacy) {
		t.Errorf("legacy route change should need a restart")
	}
}
