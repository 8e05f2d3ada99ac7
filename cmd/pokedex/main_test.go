package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pokedex-service/internal/config"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
)

func testDeps(fx *fixture.Catalogue) deps {
	return deps{
		loadConfig: func() config.Config {
			return config.Config{
				Provider: config.ProviderFixture,
				Paging:   config.PagingConfig{PageSize: 3},
				Log:      config.LogConfig{Level: "error"},
			}
		},
		newFetcher: func(config.Config, *slog.Logger) providers.Fetcher { return fx },
	}
}

func run(t *testing.T, fx *fixture.Catalogue, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(testDeps(fx))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListPrintsPages(t *testing.T) {
	out, err := run(t, fixture.New(), "list", "--pages", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "#001")
	assert.Contains(t, lines[3], "Pikachu")
	assert.Equal(t, "6 loaded, more from offset 6", lines[6])
}

func TestListJSON(t *testing.T) {
	out, err := run(t, fixture.New(), "-o", "json", "list", "--limit", "10")
	require.NoError(t, err)

	var got listOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Items, 7)
	assert.False(t, got.HasMore)
}

func TestListFromOffset(t *testing.T) {
	out, err := run(t, fixture.New(), "list", "--offset", "3", "--limit", "2", "--pages", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Pikachu")
	assert.Contains(t, lines[3], "Pichu")
	assert.Equal(t, "4 loaded, no more pages", lines[4])
}

func TestShowYAMLUsesJSONKeys(t *testing.T) {
	out, err := run(t, fixture.New(), "-o", "yaml", "show", "pikachu")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "eggGroups")
	display, ok := doc["display"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#025", display["number"])
}

func TestShowText(t *testing.T) {
	out, err := run(t, fixture.New(), "show", "25")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#025 Pikachu (electric)"))
	assert.Contains(t, out, "Total")
}

func TestShowMissingEntryFails(t *testing.T) {
	_, err := run(t, fixture.New(), "show", "missingno")
	require.Error(t, err)
	assert.True(t, providers.IsNotFound(err))
}

func TestEvolutionText(t *testing.T) {
	out, err := run(t, fixture.New(), "evolution", "bulbasaur")
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur -> Ivysaur (Lv. 16) -> Venusaur (Lv. 32)\n", out)

	out, err = run(t, fixture.New(), "evolution", "ditto")
	require.NoError(t, err)
	assert.Equal(t, "This Pokémon does not evolve.\n", out)
}

func TestSearchLocalThenRemote(t *testing.T) {
	fx := fixture.New()
	out, err := run(t, fx, "search", "saur")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "saur"))

	out, err = run(t, fx, "search", "--pages", "0", "raichu")
	require.NoError(t, err)
	assert.Contains(t, out, "#026")

	out, err = run(t, fx, "search", "missingno")
	require.NoError(t, err)
	assert.Equal(t, "No matches for \"missingno\".\n", out)
}

func TestSearchSurfacesUpstreamFailure(t *testing.T) {
	fx := fixture.New()
	boom := providers.NetworkError("pokemon/ghost", errors.New("offline"))
	fx.Fail("pokemon/ghost", boom)

	_, err := run(t, fx, "search", "--pages", "0", "ghost")
	require.ErrorIs(t, err, boom)
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, fixture.New(), "-o", "xml", "list")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, fixture.New(), "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}
