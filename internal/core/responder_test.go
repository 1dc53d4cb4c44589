package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hathor-chatbot/internal/llm"
	"hathor-chatbot/internal/session"
	"hathor-chatbot/pkg"
)

type mockLLM struct {
	reply string
	err   error
	calls int
}

func (m *mockLLM) Complete(_ context.Context, _, _ string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func newTestResponder(client llm.Client) (*Responder, session.Store) {
	store := session.NewLRUStore(16, time.Minute)
	return NewResponder(client, store, nil, nil), store
}

func TestRespondInventoryIsDeterministic(t *testing.T) {
	mock := &mockLLM{reply: "should not be called"}
	r, store := newTestResponder(mock)

	reply, err := r.Respond(context.Background(), "s1", "What oils do you have?")
	require.NoError(t, err)
	require.Zero(t, mock.calls)
	require.True(t, reply.InventoryComplete)
	require.Equal(t, pkg.ResponseInventory, reply.Type)
	require.Contains(t, reply.Text, "20 divine oils")
	require.Contains(t, reply.Text, "CURRENTLY SOLD OUT")
	require.Contains(t, reply.Text, `target="_blank"`)
	require.NotContains(t, reply.Text, "](http")

	ctx, ok := store.Get("s1")
	require.True(t, ok)
	require.Equal(t, pkg.ResponseInventory, ctx.LastType)
	require.Equal(t, reply.Text, ctx.LastResponse)
}

func TestRespondInventoryListsEveryProductOnce(t *testing.T) {
	r, _ := newTestResponder(&mockLLM{})
	reply, err := r.Respond(context.Background(), "s1", "show me all oils")
	require.NoError(t, err)
	require.Contains(t, reply.Text, "Moringa Oil")
	require.Contains(t, reply.Text, "Queen Tiye Hair Oil")
	require.Contains(t, reply.Text, "20.")
	require.NotContains(t, reply.Text, "21.")
}

func TestRespondFollowUpAfterInventory(t *testing.T) {
	mock := &mockLLM{reply: "model answer"}
	r, _ := newTestResponder(mock)

	_, err := r.Respond(context.Background(), "s1", "what oils do you have")
	require.NoError(t, err)

	reply, err := r.Respond(context.Background(), "s1", "are these all the oils?")
	require.NoError(t, err)
	require.Zero(t, mock.calls)
	require.True(t, reply.FollowUpConfirmed)
	require.Equal(t, pkg.ResponseFollowUp, reply.Type)
	require.Contains(t, reply.Text, "Total: 20 sacred oils")
}

func TestRespondFollowUpWithoutInventoryGoesToModel(t *testing.T) {
	mock := &mockLLM{reply: "a general musing"}
	r, _ := newTestResponder(mock)

	reply, err := r.Respond(context.Background(), "cold", "are these all the oils?")
	require.NoError(t, err)
	require.Equal(t, 1, mock.calls)
	require.False(t, reply.FollowUpConfirmed)
	require.Equal(t, pkg.ResponseGeneral, reply.Type)
}

func TestRespondGeneralNormalizesLinksAndExtracts(t *testing.T) {
	mock := &mockLLM{reply: "Use [Rosemary Oil](https://hathororganics.com/products/rosemary-oil) nightly."}
	r, store := newTestResponder(mock)

	reply, err := r.Respond(context.Background(), "s1", "my scalp itches")
	require.NoError(t, err)
	require.Equal(t, pkg.ResponseGeneral, reply.Type)
	require.Contains(t, reply.Text, `<a href="https://hathororganics.com/products/rosemary-oil" target="_blank">Rosemary Oil</a>`)
	require.True(t, reply.PrescriptionAvailable)
	require.NotNil(t, reply.Prescription)
	require.Equal(t, "Rosemary Oil", reply.Prescription.Products[0].Name)

	ctx, ok := store.Get("s1")
	require.True(t, ok)
	require.Equal(t, reply.Text, ctx.LastResponse)
	require.NotNil(t, ctx.Prescription)
}

func TestRespondBaldingOverride(t *testing.T) {
	// The reply mentions only one oil, but a hair-loss message triggers
	// the fixed three-product prescription.
	mock := &mockLLM{reply: "Coconut Oil will soothe you."}
	r, _ := newTestResponder(mock)

	reply, err := r.Respond(context.Background(), "s1", "I am losing my hair")
	require.NoError(t, err)
	require.NotNil(t, reply.Prescription)
	require.Len(t, reply.Prescription.Products, 3)
	require.Equal(t, "Garden Cress Oil", reply.Prescription.Products[0].Name)
}

func TestRespondGatewayFailureFallsBack(t *testing.T) {
	mock := &mockLLM{err: errors.New("connection refused")}
	r, store := newTestResponder(mock)

	reply, err := r.Respond(context.Background(), "s1", "help my skin")
	require.NoError(t, err)
	require.True(t, reply.Fallback)
	require.Equal(t, pkg.ResponseFallback, reply.Type)
	require.Contains(t, reply.Text, "temporarily disrupted")
	require.Equal(t, llm.KindOther, reply.GatewayFailure)
	require.Error(t, reply.GatewayErr)

	ctx, ok := store.Get("s1")
	require.True(t, ok)
	require.Equal(t, pkg.ResponseFallback, ctx.LastType)
}

func TestRespondUnconfiguredGatewayFallsBack(t *testing.T) {
	mock := &mockLLM{err: llm.ErrNotConfigured}
	r, _ := newTestResponder(mock)

	reply, err := r.Respond(context.Background(), "s1", "help my skin")
	require.NoError(t, err)
	require.True(t, reply.Fallback)
	require.Equal(t, llm.KindNotConfigured, reply.GatewayFailure)
}

func TestRespondPropagatePolicy(t *testing.T) {
	mock := &mockLLM{err: errors.New("boom")}
	store := session.NewLRUStore(16, time.Minute)
	policy := func(llm.FailureKind) llm.Action { return llm.ActionPropagate }
	r := NewResponder(mock, store, policy, nil)

	_, err := r.Respond(context.Background(), "s1", "help my skin")
	require.Error(t, err)
	_, ok := store.Get("s1")
	require.False(t, ok)
}

func TestRespondDownloadKeepsStoredContext(t *testing.T) {
	mock := &mockLLM{reply: "Rub Peppermint Oil on your temples."}
	r, store := newTestResponder(mock)

	first, err := r.Respond(context.Background(), "s1", "I have a headache")
	require.NoError(t, err)
	require.NotNil(t, first.Prescription)

	reply, err := r.Respond(context.Background(), "s1", "please download my prescription")
	require.NoError(t, err)
	require.True(t, reply.PrescriptionAvailable)
	require.Equal(t, first.Prescription, reply.Prescription)

	// The advice turn stays stored so the document reproduces it.
	ctx, ok := store.Get("s1")
	require.True(t, ok)
	require.Equal(t, first.Text, ctx.LastResponse)
	require.Equal(t, pkg.ResponseGeneral, ctx.LastType)
}

func TestRespondPrescriptionCarriesAcrossTurns(t *testing.T) {
	mock := &mockLLM{reply: "Try Clove Oil for the ache."}
	r, store := newTestResponder(mock)

	_, err := r.Respond(context.Background(), "s1", "my tooth aches")
	require.NoError(t, err)

	// A deterministic turn keeps the prescription alive.
	_, err = r.Respond(context.Background(), "s1", "what oils do you have")
	require.NoError(t, err)
	ctx, ok := store.Get("s1")
	require.True(t, ok)
	require.NotNil(t, ctx.Prescription)
	require.Equal(t, "Clove Oil", ctx.Prescription.Products[0].Name)

	// A model turn with no product mention keeps it too.
	mock.reply = "Rest well, my child."
	_, err = r.Respond(context.Background(), "s1", "thank you")
	require.NoError(t, err)
	ctx, ok = store.Get("s1")
	require.True(t, ok)
	require.NotNil(t, ctx.Prescription)
}

func TestRespondSessionsAreIsolated(t *testing.T) {
	mock := &mockLLM{reply: "Use Rose Oil."}
	r, store := newTestResponder(mock)

	_, err := r.Respond(context.Background(), "a", "my mood is low")
	require.NoError(t, err)
	_, ok := store.Get("b")
	require.False(t, ok)
}
