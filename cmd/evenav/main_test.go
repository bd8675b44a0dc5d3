package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sanonone/evenav/pkg/route"
	"github.com/sanonone/evenav/pkg/sde/sdetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSDE unpacks the sample universe into a temporary directory.
func writeSDE(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, f := range sdetest.FS() {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, f.Data, 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestRouteCommand(t *testing.T) {
	dir := writeSDE(t)

	out, err := run(t, "--sde", dir, "--log-level", "error", "route", "Jita", "Urlen")
	require.NoError(t, err)
	assert.Contains(t, out, "Jita -> Urlen (shortest): 3 jumps, cost 3")
	assert.Contains(t, out, "Tama")

	out, err = run(t, "--sde", dir, "route", "Jita", "Urlen", "--profile", "safer", "--json")
	require.NoError(t, err)
	var r route.Route
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 4, r.Jumps)

	out, err = run(t, "--sde", dir, "route", "Jita", "Urlen", "--avoid", "Tama,Perimeter")
	assert.ErrorIs(t, err, route.ErrNoRoute)
	assert.Empty(t, out)
}

func TestRouteCommand_ConfigFile(t *testing.T) {
	dir := writeSDE(t)
	cfg := filepath.Join(t.TempDir(), "evenav.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("sde_path: "+dir+"\nroute:\n  profile: safer\n"), 0o644))

	out, err := run(t, "--config", cfg, "route", "Jita", "Urlen")
	require.NoError(t, err)
	assert.Contains(t, out, "(safer): 4 jumps")
}

func TestSystemCommand(t *testing.T) {
	dir := writeSDE(t)

	out, err := run(t, "--sde", dir, "system", "jita")
	require.NoError(t, err)
	assert.Contains(t, out, "Jita (30000142)")
	assert.Contains(t, out, "Kimotoro")
	assert.Contains(t, out, "gates:         4")
	assert.Contains(t, out, "Ikuchi")

	out, err = run(t, "--sde", dir, "system", "Urlen", "--within", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "within 2 jumps: 4 systems")
	assert.Contains(t, out, "Perimeter")
}

func TestCommands_Errors(t *testing.T) {
	_, err := run(t, "--sde", filepath.Join(t.TempDir(), "missing.zip"), "system", "Jita")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evenav download")

	_, err = run(t, "--log-level", "loud", "system", "Jita")
	assert.ErrorContains(t, err, "unknown log level")

	_, err = run(t, "route", "Jita")
	assert.Error(t, err)
}

func TestDownloadCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(bytes.Repeat([]byte{'x'}, 1<<20))
	}))
	defer srv.Close()

	dst := filepath.Join(t.TempDir(), "sde.zip")
	out, err := run(t, "download", "--url", srv.URL, "--out", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "Downloaded 1.0 MiB")

	st, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<20), st.Size())
}
