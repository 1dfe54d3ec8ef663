package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoecard/catalog"
	"shoecard/config"
)

const listing = `
shoes:
  - slug: tail-out
    name: Tail-Out
    image_src: /img/tail-out.jpg
    price: 16500
    sale_price: 12000
    release_date: 2026-10-01T00:00:00Z
    num_of_colors: 3
  - slug: legend
    name: Legend
    image_src: /img/legend.jpg
    price: 7000
    release_date: 2026-10-10T00:00:00Z
    num_of_colors: 1
`

func TestNewApp(t *testing.T) {
	cat, err := catalog.Parse([]byte(listing))
	require.NoError(t, err)

	now := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	app, err := newApp(config.Default(), cat, func() time.Time { return now })
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/shoe/legend", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Just Released!")

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `shoecard_variant_resolved_total{variant="new-release"} 1`)

	req := httptest.NewRequest("OPTIONS", "/shoes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestNewAppRecoversFromPanics(t *testing.T) {
	cat, err := catalog.Parse([]byte(listing))
	require.NoError(t, err)

	app, err := newApp(config.Default(), cat, time.Now)
	require.NoError(t, err)
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/shoes/legend", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestCardCommand(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "shoes.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(listing), 0644))

	run := func(args ...string) string {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(append([]string{"card", "--config", filepath.Join(dir, "none.yaml"), "--catalog", catalogPath}, args...))
		require.NoError(t, rootCmd.Execute())
		return out.String()
	}

	html := run("tail-out", "--now", "2026-10-16T00:00:00Z", "--json=false")
	assert.Contains(t, html, ">Sale</div>")
	assert.Contains(t, html, "$120.00")

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(run("legend", "--now", "2027-01-01T00:00:00Z", "--json")), &view))
	assert.Equal(t, "default", view["variant"])
	assert.Equal(t, false, view["badge_visible"])
	assert.Equal(t, "1 Color", view["color_text"])
}
