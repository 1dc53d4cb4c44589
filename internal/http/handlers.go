package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"hathor-chatbot/internal/core"
	"hathor-chatbot/internal/db"
	"hathor-chatbot/internal/document"
	"hathor-chatbot/internal/session"
	"hathor-chatbot/pkg"
)

// PrescriptionFilename is the attachment name served by the download
// endpoint.
const PrescriptionFilename = "hathor-prescription.pdf"

// Server bundles together the dependencies required by HTTP handlers.  It
// implements http.Handler so it can be passed to http.ListenAndServe.
// Repo and Notifier are nil when the server runs without a database; the
// purchase endpoints then answer 503 and the chat flow is unaffected.
type Server struct {
	Responder *core.Responder
	Store     session.Store
	Key       session.KeyFunc
	Assembler *document.Assembler
	Repo      *db.Repository
	Notifier  *db.Notifier
	Log       *zap.Logger

	router chi.Router
}

// NewServer constructs a Server and mounts its routes.
func NewServer(responder *core.Responder, store session.Store, assembler *document.Assembler, repo *db.Repository, notifier *db.Notifier, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		Responder: responder,
		Store:     store,
		Key:       session.HeaderKey,
		Assembler: assembler,
		Repo:      repo,
		Notifier:  notifier,
		Log:       log,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.cors)
	s.router.Use(s.requestLogger)

	s.router.Post("/api/chat", s.handleChat)
	s.router.Get("/api/download-prescription", s.handleDownloadPrescription)
	s.router.Post("/api/purchases", s.handlePurchase)
	s.router.Get("/api/subscriptions/{userId}", s.handleSubscription)
	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/api/test", s.handleTest)

	s.router.NotFound(s.handleNotFound)
}

// cors allows any origin; the chat widget is embedded on a separate
// storefront domain.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+session.HeaderName)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.Log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// handleChat processes one chat turn.  Gateway failures never surface as
// HTTP errors; the fallback apology ships with status 200 so the widget
// keeps the conversation alive.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req pkg.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid request body", "success": false})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Message is required", "success": false})
		return
	}

	sessionID := s.Key(r)
	reply, err := s.Responder.Respond(r.Context(), sessionID, req.Message)
	if err != nil {
		// Reached only under a propagating failure policy.
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "completion gateway unavailable"})
		return
	}

	resp := pkg.ChatResponse{
		Response:              reply.Text,
		Success:               true,
		InventoryComplete:     reply.InventoryComplete,
		FollowUpConfirmed:     reply.FollowUpConfirmed,
		Fallback:              reply.Fallback,
		PrescriptionAvailable: reply.PrescriptionAvailable,
		PrescriptionData:      reply.Prescription,
	}
	if reply.Fallback && reply.GatewayErr != nil {
		resp.Error = &pkg.ErrorDetail{
			Code:    string(reply.GatewayFailure),
			Message: reply.GatewayErr.Error(),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleDownloadPrescription serves the stored reply for the session as a
// PDF attachment.  Cold sessions get a sample document rather than an
// error.
func (s *Server) handleDownloadPrescription(w http.ResponseWriter, r *http.Request) {
	sessionID := s.Key(r)
	var text string
	if ctx, ok := s.Store.Get(sessionID); ok {
		text = ctx.LastResponse
	}
	data, err := s.Assembler.Build(text, time.Now())
	if err != nil {
		s.Log.Error("prescription document build failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate prescription document"})
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", PrescriptionFilename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	_, _ = w.Write(data)
}

// handlePurchase records an order and activates the free subscription when
// the total item count crosses the threshold.
func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	if s.Repo == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "Database service unavailable",
			"message": "The database connection is not established. Please try again later.",
		})
		return
	}
	var req pkg.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.UserID == "" || len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userId and items are required"})
		return
	}

	ctx := r.Context()
	if _, err := s.Repo.CreatePurchase(ctx, req.UserID, req.Items); err != nil {
		s.Log.Error("purchase insert failed", zap.String("user_id", req.UserID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if !db.QualifiesForFreeSubscription(req.Items) {
		writeJSON(w, http.StatusOK, pkg.PurchaseResponse{Success: true, Message: "Purchase recorded"})
		return
	}

	sub, err := s.Repo.ActivateFreeSubscription(ctx, req.UserID)
	if err != nil {
		s.Log.Error("subscription activation failed", zap.String("user_id", req.UserID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, req.UserID); err != nil {
			// The purchase already succeeded; activation news can be lost.
			s.Log.Warn("subscription notify failed", zap.String("user_id", req.UserID), zap.Error(err))
		}
	}
	writeJSON(w, http.StatusOK, pkg.PurchaseResponse{
		Success:      true,
		Message:      "Purchase recorded and free subscription activated",
		Subscription: sub,
	})
}

// handleSubscription reports subscription status for a user.  Unknown users
// get an inactive status, not a 404.
func (s *Server) handleSubscription(w http.ResponseWriter, r *http.Request) {
	if s.Repo == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"error":    "Database service unavailable",
			"message":  "The database connection is not established. Please try again later.",
			"isActive": false,
		})
		return
	}
	userID := chi.URLParam(r, "userId")
	sub, err := s.Repo.GetSubscription(r.Context(), userID)
	if err != nil {
		s.Log.Error("subscription lookup failed", zap.String("user_id", userID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if sub == nil {
		writeJSON(w, http.StatusOK, map[string]bool{"isActive": false})
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Backend server is running!"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.Log.Warn("route not found",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"error":     "Not Found",
		"message":   fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
