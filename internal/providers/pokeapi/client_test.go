package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex-service/internal/providers"
)

const testBaseURL = "https://pokeapi.test/api/v2"

func newMockedClient(t *testing.T) (*Client, *httpmock.MockTransport) {
	t.Helper()
	mock := httpmock.NewMockTransport()
	client := NewClient(Config{
		BaseURL:    testBaseURL + "/",
		HTTPClient: &http.Client{Transport: mock},
		UserAgent:  "pokedex-test",
	})
	return client, mock
}

func TestFetchResourceDecodesIndexPage(t *testing.T) {
	client, mock := newMockedClient(t)
	mock.RegisterResponderWithQuery(http.MethodGet, testBaseURL+"/pokemon", "limit=2&offset=0",
		httpmock.NewStringResponder(http.StatusOK, `{
			"count": 3,
			"next": "https://pokeapi.test/api/v2/pokemon?offset=2&limit=2",
			"previous": null,
			"results": [
				{"name": "bulbasaur", "url": "https://pokeapi.test/api/v2/pokemon/1/"},
				{"name": "ivysaur", "url": "https://pokeapi.test/api/v2/pokemon/2/"}
			]
		}`))

	var page IndexResponse
	err := client.FetchResource(context.Background(), providers.IndexLocator(0, 2), &page)
	require.NoError(t, err)

	assert.Equal(t, 3, page.Count)
	require.NotNil(t, page.Next)
	assert.Nil(t, page.Previous)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "ivysaur", page.Results[1].Name)
	assert.Equal(t, 1, mock.GetTotalCallCount())
}

func TestFetchResourceSendsHeaders(t *testing.T) {
	client, mock := newMockedClient(t)
	mock.RegisterResponder(http.MethodGet, testBaseURL+"/pokemon/pikachu",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "pokedex-test", req.Header.Get("User-Agent"))
			assert.Equal(t, "application/json", req.Header.Get("Accept"))
			return httpmock.NewStringResponse(http.StatusOK, `{"id": 25, "name": "pikachu"}`), nil
		})

	var raw PokemonResponse
	require.NoError(t, client.FetchResource(context.Background(), "pokemon/pikachu", &raw))
	assert.Equal(t, 25, raw.ID)
}

func TestFetchResourcePassesAbsoluteLocatorsThrough(t *testing.T) {
	client, mock := newMockedClient(t)
	chainURL := "https://elsewhere.test/api/v2/evolution-chain/10/"
	mock.RegisterResponder(http.MethodGet, chainURL,
		httpmock.NewStringResponder(http.StatusOK, `{"id": 10, "chain": {"species": {"name": "pichu"}}}`))

	var chain EvolutionChainResponse
	require.NoError(t, client.FetchResource(context.Background(), chainURL, &chain))
	assert.Equal(t, "pichu", chain.Chain.Species.Name)
}

func TestFetchResourceMapsStatusToNotFound(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		client, mock := newMockedClient(t)
		mock.RegisterResponder(http.MethodGet, testBaseURL+"/pokemon/missingno",
			httpmock.NewStringResponder(status, "Not Found"))

		err := client.FetchResource(context.Background(), "pokemon/missingno", &PokemonResponse{})
		require.Error(t, err)

		fetchErr, ok := providers.AsFetchError(err)
		require.True(t, ok, "expected FetchError, got %T", err)
		assert.Equal(t, providers.KindNotFound, fetchErr.Kind)
		assert.Equal(t, status, fetchErr.StatusCode)
		assert.Equal(t, "pokemon/missingno", fetchErr.Locator)
		assert.Contains(t, err.Error(), "Not Found")
	}
}

func TestFetchResourceMapsTransportFailureToNetwork(t *testing.T) {
	client, mock := newMockedClient(t)
	boom := errors.New("connection reset")
	mock.RegisterResponder(http.MethodGet, testBaseURL+"/pokemon/pikachu", httpmock.NewErrorResponder(boom))

	err := client.FetchResource(context.Background(), "pokemon/pikachu", &PokemonResponse{})
	assert.Equal(t, providers.KindNetwork, providers.KindOf(err))
	assert.ErrorIs(t, err, boom)
}

func TestFetchResourceMapsMalformedBodyToDecode(t *testing.T) {
	client, mock := newMockedClient(t)
	mock.RegisterResponder(http.MethodGet, testBaseURL+"/pokemon/pikachu",
		httpmock.NewStringResponder(http.StatusOK, `{"id": "twenty-five"`))

	err := client.FetchResource(context.Background(), "pokemon/pikachu", &PokemonResponse{})
	assert.Equal(t, providers.KindDecode, providers.KindOf(err))
}

func TestFetchResourceWithNilDestinationOnlyChecksStatus(t *testing.T) {
	client, mock := newMockedClient(t)
	mock.RegisterResponder(http.MethodGet, testBaseURL+"/pokemon/pikachu",
		httpmock.NewStringResponder(http.StatusOK, `not json`))

	assert.NoError(t, client.FetchResource(context.Background(), "pokemon/pikachu", nil))
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, providers.DefaultBaseURL, client.BaseURL())
	assert.Equal(t, providerName, client.Name())
	assert.Equal(t, defaultUserAgent, client.userAgent)

	httpClient, ok := client.httpClient.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, defaultHTTPTimeout, httpClient.Timeout)
}
