package http

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/config"
	"github.com/mauv0809/padel-ledger/internal/database"
	"github.com/mauv0809/padel-ledger/internal/metrics"
	"github.com/mauv0809/padel-ledger/internal/notifier"
	"github.com/mauv0809/padel-ledger/internal/padel"
	"github.com/mauv0809/padel-ledger/internal/playtomic"
	"github.com/mauv0809/padel-ledger/internal/processor"
	"github.com/mauv0809/padel-ledger/internal/pubsub"
	"github.com/mauv0809/padel-ledger/internal/stats"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSlackSigningSecret = "test-signing-secret"

// setupTestServer initializes a new server with an in-memory database and mock
// clients. Ratings are applied inline since no Pub/Sub client is configured.
func setupTestServer(t *testing.T, playtomicClient playtomic.PlaytomicClient, notifier notifier.Notifier, cfg config.Config) *Server {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(dbTeardown)

	clubStore := club.New(db)
	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	proc := processor.New(clubStore, notifier, metricsSvc, nil, nil)

	return NewServer(clubStore, metricsSvc, metricsHandler, cfg, playtomicClient, notifier, proc, nil)
}

func slackConfig(secret string) config.Config {
	return config.Config{Slack: config.SlackConfig{SigningSecret: secret}}
}

// createSlackCommandRequest creates an http.Request suitable for testing Slack slash commands,
// including the necessary signature and timestamp headers for verification.
func createSlackCommandRequest(t *testing.T, targetURL string, form url.Values, signingSecret string) *http.Request {
	t.Helper()

	bodyBytes := []byte(form.Encode())
	req, err := http.NewRequest("POST", targetURL, bytes.NewReader(bodyBytes))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := time.Now().Unix()
	req.Header.Set("X-Slack-Request-Timestamp", strconv.FormatInt(timestamp, 10))

	baseString := fmt.Sprintf("v0:%d:%s", timestamp, string(bodyBytes))
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	req.Header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(h.Sum(nil)))

	return req
}

func doJSON(t *testing.T, server *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

// addPlayers adds four 5ta players and returns their ids.
func addPlayers(t *testing.T, store club.ClubStore) [4]string {
	t.Helper()

	var ids [4]string
	for i, name := range []string{"Ana Ruiz", "Bea Soler", "Carla Vidal", "Dani Mora"} {
		p, err := store.AddPlayer(name, padel.Category5ta, false, "")
		require.NoError(t, err)
		ids[i] = p.ID
	}
	return ids
}

func pushBody(t *testing.T, event pubsub.MatchEvent) []byte {
	t.Helper()

	data, err := pubsub.Encode(event)
	require.NoError(t, err)
	body, err := json.Marshal(map[string]any{
		"subscription": "projects/test/subscriptions/update-ratings",
		"message":      map[string]string{"data": base64.StdEncoding.EncodeToString(data)},
	})
	require.NoError(t, err)
	return body
}

func TestHealthCheckHandler(t *testing.T) {
	server := setupTestServer(t, playtomic.NewMockClient(), notifier.NewMock(), config.Config{})

	req, err := http.NewRequest("GET", "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestCategoriesHandler(t *testing.T) {
	server := setupTestServer(t, playtomic.NewMockClient(), notifier.NewMock(), config.Config{})

	rr := doJSON(t, server, "GET", "/categories", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var categories []struct {
		Category      string `json:"category"`
		InitialRating int    `json:"initial_rating"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &categories))
	require.Len(t, categories, 8)
	assert.Equal(t, "8va", categories[0].Category)
	assert.Equal(t, 1000, categories[0].InitialRating)
	assert.Equal(t, "1ra", categories[7].Category)
	assert.Equal(t, 2400, categories[7].InitialRating)
}

func TestValidateHandler(t *testing.T) {
	server := setupTestServer(t, playtomic.NewMockClient(), notifier.NewMock(), config.Config{})

	type response struct {
		Valid  bool   `json:"valid"`
		Error  string `json:"error"`
		Winner int    `json:"winner"`
		Tally  *struct {
			Team1Sets  int `json:"team1_sets"`
			Team2Sets  int `json:"team2_sets"`
			Team1Games int `json:"team1_games"`
			Team2Games int `json:"team2_games"`
		} `json:"tally"`
	}

	t.Run("valid match with super tie-break", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/validate", map[string]any{
			"sets":   []padel.SetScore{{Team1: 6, Team2: 4}, {Team1: 3, Team2: 6}, {Team1: 10, Team2: 8}},
			"config": padel.MatchConfig{SuperTiebreak: true},
		})
		require.Equal(t, http.StatusOK, rr.Code)

		var resp response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, 1, resp.Winner)
		require.NotNil(t, resp.Tally)
		assert.Equal(t, 2, resp.Tally.Team1Sets)
		assert.Equal(t, 1, resp.Tally.Team2Sets)
		assert.Equal(t, 9, resp.Tally.Team1Games)
		assert.Equal(t, 10, resp.Tally.Team2Games)
	})

	t.Run("invalid set score", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/validate", map[string]any{
			"sets": []padel.SetScore{{Team1: 6, Team2: 5}, {Team1: 6, Team2: 4}},
		})
		require.Equal(t, http.StatusOK, rr.Code)

		var resp response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		assert.NotEmpty(t, resp.Error)
		assert.Nil(t, resp.Tally)
	})

	t.Run("malformed body", func(t *testing.T) {
		req, err := http.NewRequest("POST", "/validate", strings.NewReader("{not json"))
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing sets", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/validate", map[string]any{"config": padel.MatchConfig{}})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPlayersHandlers(t *testing.T) {
	server := setupTestServer(t, playtomic.NewMockClient(), notifier.NewMock(), config.Config{})

	var created club.PlayerInfo
	t.Run("creates player", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/players", map[string]any{"name": "Morten Voss", "category": "4TA"})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, padel.Category4ta, created.Category)
		assert.Equal(t, 1800, created.Elo)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/players", map[string]any{"name": "X", "category": "9na"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/players", map[string]any{"category": "4ta"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("ghost player needs a creator", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/players", map[string]any{"name": "Ghost", "category": "6ta", "is_ghost": true})
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = doJSON(t, server, "POST", "/players", map[string]any{"name": "Ghost", "category": "6ta", "is_ghost": true, "created_by": created.ID})
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("dry run does not store", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/players?dry_run=true", map[string]any{"name": "Dry", "category": "8va"})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Dry")
	})

	t.Run("gets player", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/players/"+created.ID, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Morten Voss")
	})

	t.Run("unknown player is 404", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/players/does-not-exist", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("lists players", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/players", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var players []club.PlayerInfo
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
		assert.Len(t, players, 2)
	})
}

func TestRecordMatchHandler(t *testing.T) {
	mockNotifier := notifier.NewMock()
	server := setupTestServer(t, playtomic.NewMockClient(), mockNotifier, config.Config{})
	ids := addPlayers(t, server.Store)

	request := func(sets []padel.SetScore) map[string]any {
		return map[string]any{
			"team1": []string{ids[0], ids[1]},
			"team2": []string{ids[2], ids[3]},
			"sets":  sets,
		}
	}

	t.Run("records and rates a match", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/matches", request([]padel.SetScore{{Team1: 6, Team2: 4}, {Team1: 7, Team2: 5}}))
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var match club.Match
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &match))
		assert.Equal(t, padel.Team1, match.Winner)

		stored, err := server.Store.GetMatch(match.ID)
		require.NoError(t, err)
		assert.Equal(t, club.StatusRated, stored.ProcessingStatus)
		require.NotNil(t, stored.EloChanges)
		assert.Equal(t, 16, stored.EloChanges.Player1.Change)
		assert.Equal(t, -16, stored.EloChanges.Player3.Change)
		assert.Equal(t, 1, mockNotifier.ResultNotifications())

		rr = doJSON(t, server, "GET", "/matches/"+match.ID, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("ranks the winners first", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/rankings?limit=2", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var rankings []club.PlayerStats
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rankings))
		require.Len(t, rankings, 2)
		for _, r := range rankings {
			assert.Equal(t, 1616, r.Elo)
			assert.Equal(t, 1, r.MatchesWon)
		}
	})

	t.Run("rejects an illegal score", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/matches", request([]padel.SetScore{{Team1: 6, Team2: 4}, {Team1: 6, Team2: 3}, {Team1: 6, Team2: 2}}))
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), `"valid":false`)
	})

	t.Run("rejects unknown players", func(t *testing.T) {
		body := request([]padel.SetScore{{Team1: 6, Team2: 4}, {Team1: 6, Team2: 4}})
		body["team2"] = []string{ids[2], "stranger"}
		rr := doJSON(t, server, "POST", "/matches", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects a player on both teams", func(t *testing.T) {
		body := request([]padel.SetScore{{Team1: 6, Team2: 4}, {Team1: 6, Team2: 4}})
		body["team2"] = []string{ids[0], ids[3]}
		rr := doJSON(t, server, "POST", "/matches", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("dry run previews without storing", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/matches?dry_run=true", request([]padel.SetScore{{Team1: 2, Team2: 6}, {Team1: 4, Team2: 6}}))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "elo_changes")

		matches, err := server.Store.GetAllMatches()
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("lists matches for a player", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/matches?player="+ids[0], nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var matches []club.Match
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &matches))
		assert.Len(t, matches, 1)

		rr = doJSON(t, server, "GET", "/matches?player=nobody", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("unknown match is 404", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/matches/nope", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPlayerRecordHandlers(t *testing.T) {
	server := setupTestServer(t, playtomic.NewMockClient(), notifier.NewMock(), config.Config{})
	ids := addPlayers(t, server.Store)

	record := func(team1, team2 [2]string, sets []padel.SetScore) {
		rr := doJSON(t, server, "POST", "/matches", map[string]any{"team1": team1, "team2": team2, "sets": sets})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}
	record([2]string{ids[0], ids[1]}, [2]string{ids[2], ids[3]}, []padel.SetScore{{Team1: 6, Team2: 4}, {Team1: 6, Team2: 4}})
	record([2]string{ids[0], ids[2]}, [2]string{ids[1], ids[3]}, []padel.SetScore{{Team1: 4, Team2: 6}, {Team1: 3, Team2: 6}})

	t.Run("head to head", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/players/"+ids[0]+"/head-to-head/"+ids[3], nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var h2h stats.HeadToHead
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &h2h))
		assert.Equal(t, 2, h2h.Matches)
		assert.Equal(t, 1, h2h.PlayerWins)
		assert.Equal(t, 1, h2h.OpponentWins)
	})

	t.Run("head to head with self is rejected", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/players/"+ids[0]+"/head-to-head/"+ids[0], nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("head to head with unknown opponent is 404", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/players/"+ids[0]+"/head-to-head/ghost", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("partners", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/players/"+ids[0]+"/partners", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var partners []stats.PartnerStats
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &partners))
		require.Len(t, partners, 2)
		byID := map[string]stats.PartnerStats{}
		for _, p := range partners {
			byID[p.PartnerID] = p
		}
		assert.Equal(t, 1, byID[ids[1]].Wins)
		assert.Equal(t, "Bea Soler", byID[ids[1]].PartnerName)
		assert.Equal(t, 1, byID[ids[2]].Losses)
	})
}

func TestClubAndTournamentHandlers(t *testing.T) {
	server := setupTestServer(t, playtomic.NewMockClient(), notifier.NewMock(), config.Config{})

	rr := doJSON(t, server, "POST", "/clubs", map[string]any{"name": "Club Padel Sitges", "city": "Sitges"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var c club.Club
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))

	rr = doJSON(t, server, "POST", "/tournaments", map[string]any{"club_id": c.ID, "name": "Summer Open", "start_date": 1751328000, "end_date": 1751414400})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doJSON(t, server, "POST", "/tournaments", map[string]any{"club_id": c.ID, "name": "Backwards", "start_date": 1751414400, "end_date": 1751328000})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, server, "GET", "/clubs", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Club Padel Sitges")

	rr = doJSON(t, server, "GET", "/tournaments?club="+c.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var tournaments []club.Tournament
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tournaments))
	require.Len(t, tournaments, 1)
	assert.Equal(t, "Summer Open", tournaments[0].Name)
}

func TestUpdateRatingsHandler(t *testing.T) {
	server := setupTestServer(t, playtomic.NewMockClient(), notifier.NewMock(), config.Config{})
	ids := addPlayers(t, server.Store)

	match := &club.Match{
		Team1:  [2]string{ids[0], ids[1]},
		Team2:  [2]string{ids[2], ids[3]},
		Sets:   []padel.SetScore{{Team1: 4, Team2: 6}, {Team1: 4, Team2: 6}},
		Winner: padel.Team2,
	}
	require.NoError(t, server.Store.InsertMatch(match))

	t.Run("rates the pushed match", func(t *testing.T) {
		req, err := http.NewRequest("POST", "/pubsub/update-ratings", bytes.NewReader(pushBody(t, pubsub.MatchEvent{MatchID: match.ID})))
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		stored, err := server.Store.GetMatch(match.ID)
		require.NoError(t, err)
		assert.Equal(t, club.StatusRated, stored.ProcessingStatus)
	})

	t.Run("redelivery is acknowledged", func(t *testing.T) {
		req, err := http.NewRequest("POST", "/pubsub/update-ratings", bytes.NewReader(pushBody(t, pubsub.MatchEvent{MatchID: match.ID})))
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		player, err := server.Store.GetPlayer(ids[2])
		require.NoError(t, err)
		assert.Equal(t, 1616, player.Elo, "ratings must only be applied once")
	})

	t.Run("unknown match is acknowledged", func(t *testing.T) {
		req, err := http.NewRequest("POST", "/pubsub/update-ratings", bytes.NewReader(pushBody(t, pubsub.MatchEvent{MatchID: "gone"})))
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid base64 is rejected", func(t *testing.T) {
		body := `{"subscription":"s","message":{"data":"%%%"}}`
		req, err := http.NewRequest("POST", "/pubsub/update-ratings", strings.NewReader(body))
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestProcessMatchesHandler(t *testing.T) {
	server := setupTestServer(t, playtomic.NewMockClient(), notifier.NewMock(), config.Config{})
	ids := addPlayers(t, server.Store)

	for i := 0; i < 2; i++ {
		require.NoError(t, server.Store.InsertMatch(&club.Match{
			Team1:  [2]string{ids[0], ids[1]},
			Team2:  [2]string{ids[2], ids[3]},
			Sets:   []padel.SetScore{{Team1: 6, Team2: 1}, {Team1: 6, Team2: 2}},
			Winner: padel.Team1,
		}))
	}

	rr := doJSON(t, server, "POST", "/process?dry_run=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	pending, err := server.Store.GetMatchesForProcessing()
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	rr = doJSON(t, server, "POST", "/process", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"rated":2}`, rr.Body.String())

	pending, err = server.Store.GetMatchesForProcessing()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestImportHandler(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		server := setupTestServer(t, playtomic.NewMockClient(), notifier.NewMock(), config.Config{})
		rr := doJSON(t, server, "POST", "/import", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("imports nothing new", func(t *testing.T) {
		mockClient := playtomic.NewMockClient()
		var gotParams *playtomic.SearchMatchesParams
		mockClient.GetMatchesFunc = func(params *playtomic.SearchMatchesParams) ([]playtomic.MatchSummary, error) {
			gotParams = params
			return nil, nil
		}
		server := setupTestServer(t, mockClient, notifier.NewMock(), config.Config{TenantID: "tenant-1"})

		rr := doJSON(t, server, "POST", "/import?days=7", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"fetched":0,"imported":0,"skipped":0,"rejected":0}`, rr.Body.String())
		require.NotNil(t, gotParams)
		assert.Equal(t, []string{"tenant-1"}, gotParams.TenantIDs)
	})
}

func TestRankingsCommandHandler(t *testing.T) {
	mockNotifier := notifier.NewMock()
	var gotRankings []club.PlayerStats
	mockNotifier.FormatRankingsResponseFunc = func(rankings []club.PlayerStats) (any, error) {
		gotRankings = rankings
		return slack.Message{}, nil
	}
	server := setupTestServer(t, playtomic.NewMockClient(), mockNotifier, slackConfig(testSlackSigningSecret))
	addPlayers(t, server.Store)

	form := url.Values{}
	form.Set("text", "3")
	req := createSlackCommandRequest(t, "/slack/command/rankings", form, testSlackSigningSecret)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, gotRankings, 3)
}

func TestPlayerStatsCommandHandler(t *testing.T) {
	mockNotifier := notifier.NewMock()
	mockNotifier.FormatPlayerStatsResponseFunc = func(stats *club.PlayerStats, query string) (any, error) {
		return slack.Message{}, nil
	}
	mockNotifier.FormatPlayerNotFoundResponseFunc = func(query string) (any, error) {
		return slack.Message{}, nil
	}
	server := setupTestServer(t, playtomic.NewMockClient(), mockNotifier, slackConfig(testSlackSigningSecret))
	addPlayers(t, server.Store)

	t.Run("handles found player", func(t *testing.T) {
		form := url.Values{}
		form.Set("text", "Ana")

		req := createSlackCommandRequest(t, "/slack/command/player-stats", form, testSlackSigningSecret)

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("handles not found player", func(t *testing.T) {
		form := url.Values{}
		form.Set("text", "Unknown")

		req := createSlackCommandRequest(t, "/slack/command/player-stats", form, testSlackSigningSecret)

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("handles missing player name", func(t *testing.T) {
		req := createSlackCommandRequest(t, "/slack/command/player-stats", url.Values{}, testSlackSigningSecret)

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects request with invalid signature", func(t *testing.T) {
		form := url.Values{}
		form.Set("text", "Ana")

		req := createSlackCommandRequest(t, "/slack/command/player-stats", form, testSlackSigningSecret)
		req.Header.Set("X-Slack-Signature", "v0=invalid-signature")

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects request with missing signature", func(t *testing.T) {
		form := url.Values{}
		form.Set("text", "Ana")

		req := createSlackCommandRequest(t, "/slack/command/player-stats", form, testSlackSigningSecret)
		req.Header.Del("X-Slack-Signature")

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects request with outdated timestamp", func(t *testing.T) {
		form := url.Values{}
		form.Set("text", "Ana")

		req := createSlackCommandRequest(t, "/slack/command/player-stats", form, testSlackSigningSecret)
		req.Header.Set("X-Slack-Request-Timestamp", strconv.FormatInt(time.Now().Add(-6*time.Minute).Unix(), 10))

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	server := setupTestServer(t, playtomic.NewMockClient(), notifier.NewMock(), config.Config{})
	ids := addPlayers(t, server.Store)

	rr := doJSON(t, server, "POST", "/matches", map[string]any{
		"team1": []string{ids[0], ids[1]},
		"team2": []string{ids[2], ids[3]},
		"sets":  []padel.SetScore{{Team1: 6, Team2: 0}, {Team1: 6, Team2: 0}},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, server, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "padel_matches_recorded_total 1")
}
