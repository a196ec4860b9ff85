package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `
coworkers:
  - integration_id: c-1
    first_name: Billy
    last_name: Bob
organizations:
  - integration_id: o-1
    name: Lundalogik
    responsible_coworker: c-1
`

func writeDoc(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "import.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "validate", writeDoc(t, dir, validDoc))
	require.NoError(t, err)
	assert.Contains(t, out, "o-1")
	assert.Contains(t, out, "ok")

	out, err = run(t, "validate", "--json", writeDoc(t, dir, "deals:\n  - integration_id: d-1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 entities are invalid")
	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	assert.Equal(t, false, reports[0]["valid"])
}

func TestSerializeCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "serialize", writeDoc(t, dir, validDoc))
	require.NoError(t, err)

	var payloads []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payloads))
	require.Len(t, payloads, 2)
	assert.Equal(t, "Coworker", payloads[0]["type_name"])

	target := filepath.Join(dir, "out.json")
	_, err = run(t, "serialize", "-o", target, writeDoc(t, dir, validDoc))
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type_name": "Organization"`)
}

func TestPushAndRunsCommands(t *testing.T) {
	var hits int
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"remote-1"}`))
	}))
	defer remote.Close()

	dir := t.TempDir()
	doc := writeDoc(t, dir, validDoc)
	db := filepath.Join(dir, "runs.db")
	common := []string{"--db-path", db, "--remote-url", remote.URL, "--token", "secret", "--log-level", "error"}

	out, err := run(t, append([]string{"push", "--json", doc}, common...)...)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
	var pushed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &pushed))
	assert.Equal(t, "completed", pushed["status"])
	assert.Equal(t, float64(2), pushed["succeeded"])

	out, err = run(t, append([]string{"push", doc}, common...)...)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
	assert.Contains(t, out, "completed")

	out, err = run(t, "runs", "--db-path", db)
	require.NoError(t, err)
	assert.Contains(t, out, pushed["id"].(string))

	out, err = run(t, "runs", "--db-path", db, pushed["id"].(string))
	require.NoError(t, err)
	assert.Contains(t, out, "remote-1")
}

func TestPushRequiresToken(t *testing.T) {
	t.Setenv("MOVETOGO_TOKEN", "")
	dir := t.TempDir()
	_, err := run(t, "push", "--db-path", filepath.Join(dir, "runs.db"), writeDoc(t, dir, validDoc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MOVETOGO_TOKEN")
}
