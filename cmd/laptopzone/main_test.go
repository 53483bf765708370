package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Kariqs/laptopzone-api/controllers"
	"github.com/Kariqs/laptopzone-api/routes"
	"github.com/Kariqs/laptopzone-api/store"
	"github.com/Kariqs/laptopzone-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestSeedAndBrowse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := store.NewMemoryStore(nil)
	s.SetAdmin("owner", true)
	srv := httptest.NewServer(routes.NewRouter(controllers.New(s, s, "cli-secret", time.Hour), nil))
	defer srv.Close()

	tok, err := utils.GenerateJWT("owner", "owner@laptopzone.test", "cli-secret", time.Hour)
	require.NoError(t, err)

	out := run(t, "--api", srv.URL, "--token", tok, "seed")
	assert.Contains(t, out, "created 6, skipped 0")

	out = run(t, "--api", srv.URL, "--token", tok, "seed")
	assert.Contains(t, out, "created 0, skipped 6")

	out = run(t, "--api", srv.URL, "products", "--brand", "Lenovo")
	assert.Equal(t, 3, strings.Count(out, "\n"), out)
	assert.Contains(t, out, "lenovo-thinkpad-x1-carbon-g6")

	out = run(t, "--api", srv.URL, "recommend", "--min-budget", "400", "--max-budget", "600", "--cpu", "ryzen", "--ram-min", "32")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 1)
	assert.Contains(t, lines[1], "lenovo-thinkpad-t14s-gen1-touch")
	assert.True(t, strings.HasPrefix(lines[1], "3/5"), lines[1])
}
