package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hathor-chatbot/internal/catalog"
	"hathor-chatbot/internal/intent"
	"hathor-chatbot/internal/llm"
	"hathor-chatbot/internal/session"
	"hathor-chatbot/pkg"
)

// Responder orchestrates one chat turn: classify the message, answer it
// deterministically or through the completion gateway, mine the reply for
// recommended products, and record the turn in the session store.
type Responder struct {
	LLM    llm.Client
	Store  session.Store
	Policy llm.Policy
	Log    *zap.Logger
}

// Reply is the outcome of one chat turn, before JSON shaping.
type Reply struct {
	Text                  string
	Type                  pkg.ResponseType
	InventoryComplete     bool
	FollowUpConfirmed     bool
	Fallback              bool
	PrescriptionAvailable bool
	Prescription          *pkg.Prescription
	GatewayFailure        llm.FailureKind
	GatewayErr            error
}

// NewResponder wires a responder.  A nil policy degrades every gateway
// failure to the fallback apology; a nil logger is replaced with a no-op.
func NewResponder(client llm.Client, store session.Store, policy llm.Policy, log *zap.Logger) *Responder {
	if policy == nil {
		policy = llm.DefaultPolicy
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Responder{LLM: client, Store: store, Policy: policy, Log: log}
}

// Respond handles one inbound message for a session.  The returned error is
// non-nil only when the failure policy elects to propagate a gateway error;
// by default every failure is absorbed into the fallback reply.
func (r *Responder) Respond(ctx context.Context, sessionID, message string) (*Reply, error) {
	prior, hasPrior := r.Store.Get(sessionID)
	var priorType pkg.ResponseType
	if hasPrior {
		priorType = prior.LastType
	}

	switch intent.Classify(message, priorType) {
	case intent.Download:
		// Reuse whatever prescription is stored; the stored context is
		// left untouched so the document still reproduces the advice turn.
		reply := &Reply{
			Text:                  NormalizeLinks(DownloadReadyText),
			Type:                  priorType,
			PrescriptionAvailable: true,
		}
		if hasPrior {
			reply.Prescription = prior.Prescription
		}
		r.Log.Info("download request",
			zap.String("session_id", sessionID),
			zap.Bool("has_prescription", reply.Prescription != nil))
		return reply, nil

	case intent.Inventory:
		text := NormalizeLinks(RenderInventory())
		r.store(sessionID, pkg.ResponseInventory, text, carryPrescription(prior, hasPrior))
		r.Log.Info("inventory query detected, returning full inventory",
			zap.String("session_id", sessionID))
		return &Reply{Text: text, Type: pkg.ResponseInventory, InventoryComplete: true}, nil

	case intent.FollowUp:
		text := NormalizeLinks(RenderFollowUp())
		r.store(sessionID, pkg.ResponseFollowUp, text, carryPrescription(prior, hasPrior))
		r.Log.Info("follow-up query detected, confirming complete inventory",
			zap.String("session_id", sessionID))
		return &Reply{Text: text, Type: pkg.ResponseFollowUp, FollowUpConfirmed: true}, nil
	}

	return r.general(ctx, sessionID, message, prior, hasPrior)
}

func (r *Responder) general(ctx context.Context, sessionID, message string, prior session.Context, hasPrior bool) (*Reply, error) {
	raw, err := r.LLM.Complete(ctx, SystemPrompt(), message)
	if err != nil {
		kind := llm.ClassifyError(err)
		r.Log.Warn("completion gateway failed, using fallback response",
			zap.String("session_id", sessionID),
			zap.String("failure_kind", string(kind)),
			zap.Error(err))
		if r.Policy(kind) == llm.ActionPropagate {
			return nil, err
		}
		text := FallbackText
		r.store(sessionID, pkg.ResponseFallback, text, carryPrescription(prior, hasPrior))
		return &Reply{
			Text:           text,
			Type:           pkg.ResponseFallback,
			Fallback:       true,
			GatewayFailure: kind,
			GatewayErr:     err,
		}, nil
	}

	text := NormalizeLinks(raw)
	var rx *pkg.Prescription
	if ContainsBaldingConcern(message) {
		rx = BaldingPrescription()
	} else {
		rx = ExtractPrescription(text, catalog.All())
	}
	if rx == nil && hasPrior {
		rx = prior.Prescription
	}
	r.store(sessionID, pkg.ResponseGeneral, text, rx)
	r.Log.Info("received complete response from gateway",
		zap.String("session_id", sessionID),
		zap.Int("response_length", len(text)),
		zap.Bool("prescription_extracted", rx != nil))
	return &Reply{
		Text:                  text,
		Type:                  pkg.ResponseGeneral,
		Prescription:          rx,
		PrescriptionAvailable: rx != nil,
	}, nil
}

func (r *Responder) store(sessionID string, t pkg.ResponseType, text string, rx *pkg.Prescription) {
	r.Store.Put(sessionID, session.Context{
		LastType:     t,
		LastResponse: text,
		Prescription: rx,
		UpdatedAt:    time.Now(),
	})
}

// carryPrescription keeps an earlier prescription alive across turns that
// do not produce a fresh one.
func carryPrescription(prior session.Context, hasPrior bool) *pkg.Prescription {
	if !hasPrior {
		return nil
	}
	return prior.Prescription
}
