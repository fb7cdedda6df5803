package pubsub

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func setupFakePubSub(t *testing.T) (*client, *pstest.Server) {
	t.Helper()
	srv := pstest.NewServer()
	t.Cleanup(func() { srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	c, err := pubsub.NewClient(context.Background(), "padel-test", option.WithGRPCConn(conn))
	require.NoError(t, err)
	pc := newClient(c)
	t.Cleanup(pc.Close)
	return pc, srv
}

func TestSendMessage_PublishesMsgpack(t *testing.T) {
	c, srv := setupFakePubSub(t)
	_, err := c.client.CreateTopic(context.Background(), string(EventUpdateRatings))
	require.NoError(t, err)

	require.NoError(t, c.SendMessage(EventUpdateRatings, MatchEvent{MatchID: "m-1"}))

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	var got MatchEvent
	require.NoError(t, Decode(msgs[0].Data, &got))
	assert.Equal(t, "m-1", got.MatchID)
}

func TestSendMessage_MissingTopic(t *testing.T) {
	c, _ := setupFakePubSub(t)
	assert.Error(t, c.SendMessage(EventUpdateRatings, MatchEvent{MatchID: "m-1"}))
}

func TestSendMessage_GivesUpAfterTimeout(t *testing.T) {
	c, _ := setupFakePubSub(t)
	_, err := c.client.CreateTopic(context.Background(), string(EventUpdateRatings))
	require.NoError(t, err)

	old := publishTimeout
	publishTimeout = time.Nanosecond
	t.Cleanup(func() { publishTimeout = old })

	start := time.Now()
	assert.Error(t, c.SendMessage(EventUpdateRatings, MatchEvent{MatchID: "m-1"}))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestMatchEventWireFormat(t *testing.T) {
	data, err := Encode(MatchEvent{MatchID: "m-1", DryRun: true})
	require.NoError(t, err)

	var got MatchEvent
	require.NoError(t, NewMock().ProcessMessage(data, &got))
	assert.Equal(t, "m-1", got.MatchID)
	assert.True(t, got.DryRun)

	var fromMap map[string]any
	require.NoError(t, Decode(data, &fromMap))
	assert.Equal(t, "m-1", fromMap["match_id"], "fields are keyed by their msgpack tags")
}

func TestDecode_RejectsGarbage(t *testing.T) {
	var got MatchEvent
	assert.Error(t, Decode([]byte{0xc1}, &got))
}
