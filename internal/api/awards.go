package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	interf "github.com/njitshpe/shpe-app-sub005/internal/interfaces"
	model "github.com/njitshpe/shpe-app-sub005/internal/models"
	services "github.com/njitshpe/shpe-app-sub005/internal/services"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type RewardsHandler struct {
	router    *mux.Router
	service   *services.AwardService
	rules     interf.RuleStorage
	cache     interf.CacheStorage
	publisher interf.RulePublisher
	logger    *zap.Logger
	pingers   []Pinger
}

type AwardRequest struct {
	UserID     string         `json:"userId,omitempty"`
	ActionType string         `json:"actionType"`
	EventID    string         `json:"eventId,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

type AwardResponse struct {
	Success     bool                    `json:"success"`
	Transaction *model.AwardTransaction `json:"transaction"`
	NewBalance  int                     `json:"newBalance"`
	Rank        model.Rank              `json:"rank"`
	Reasons     []string                `json:"reasons"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func NewHandler(service *services.AwardService, rules interf.RuleStorage, cache interf.CacheStorage,
	publisher interf.RulePublisher, logger *zap.Logger, pingers ...Pinger) *RewardsHandler {
	router := mux.NewRouter()
	handler := &RewardsHandler{router, service, rules, cache, publisher, logger, pingers}
	router.Use(MiddlewareRecover(logger))
	router.Use(MiddlewareLog())
	router.HandleFunc("/award", handler.AwardHandler).Methods(http.MethodPost)
	router.HandleFunc("/balance/{user}", handler.BalanceHandler).Methods(http.MethodGet)
	router.HandleFunc("/awards/{user}", handler.AwardsHandler).Methods(http.MethodGet)
	router.HandleFunc("/rules/all", handler.GetAllRulesHandler).Methods(http.MethodGet)
	router.HandleFunc("/rules/{version}", handler.GetRulesVersionHandler).Methods(http.MethodGet)
	router.HandleFunc("/rules", handler.GetActiveRulesHandler).Methods(http.MethodGet)
	router.HandleFunc("/rules", handler.PublishRulesHandler).Methods(http.MethodPost)
	router.HandleFunc("/healthz", handler.HealthHandler).Methods(http.MethodGet)

	return handler
}

func (h *RewardsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *RewardsHandler) Log(msg string, handler string, err error) {
	h.logger.Error(msg,
		zap.String("handler", handler),
		zap.Error(err),
	)
}

// code -> HTTP status, everything unexpected is a 500
func statusForCode(code string) int {
	switch code {
	case model.CodeUnauthorized:
		return http.StatusUnauthorized
	case model.CodeInvalidEvent:
		return http.StatusNotFound
	case model.CodeServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func (h *RewardsHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.Log("Encode response", "writeJSON", err)
	}
}

func (h *RewardsHandler) writeError(w http.ResponseWriter, err error) {
	code := model.ErrorCode(err)
	message := "internal server error"
	var aerr *model.AwardError
	if errors.As(err, &aerr) {
		message = aerr.Message
	}
	h.writeJSON(w, statusForCode(code), ErrorResponse{Success: false, Error: message, Code: code})
}

// Award an action
func (h *RewardsHandler) AwardHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "AwardHandler", err)
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Error: "Body is empty", Code: model.CodeInvalidActionType})
		return
	}
	defer req.Body.Close()

	request := &AwardRequest{}
	err = json.Unmarshal(body, request)
	if err != nil {
		h.Log("Unmarshal", "AwardHandler", err)
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Error: "Body is not correct", Code: model.CodeInvalidActionType})
		return
	}

	token := strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
	payload := model.ActionPayload{
		ActionType: request.ActionType,
		UserID:     request.UserID,
		EventID:    request.EventID,
		Metadata:   request.Metadata,
	}

	result, err := h.service.Award(req.Context(), payload, token)
	if err != nil {
		h.service.Log(err)
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, AwardResponse{
		Success:     true,
		Transaction: &result.Transaction,
		NewBalance:  result.NewBalance,
		Rank:        result.Rank,
		Reasons:     result.Reasons,
	})
}

// Balance and rank for a user
func (h *RewardsHandler) BalanceHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	profile, err := h.service.GetBalance(req.Context(), vars["user"])
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		h.Log("Get balance", "BalanceHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, profile)
}

// Award history for a user in a date range
func (h *RewardsHandler) AwardsHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	from := req.URL.Query().Get("from")
	to := req.URL.Query().Get("to")
	if from == "" {
		from = "1970-01-01"
	}
	if to == "" {
		to = time.Now().Format("2006-01-02")
	}

	tnxs, err := h.service.GetAwards(req.Context(), vars["user"], from, to)
	if err != nil {
		h.Log("Get awards", "AwardsHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, tnxs)
}

// Active rule document
func (h *RewardsHandler) GetActiveRulesHandler(w http.ResponseWriter, req *http.Request) {
	doc, err := h.rules.GetActiveDocument(req.Context())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.writeJSON(w, http.StatusNotFound, ErrorResponse{Success: false, Error: "Active rule document not found", Code: model.CodeRulesNotFound})
			return
		}
		h.Log("DB get", "GetActiveRulesHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, doc)
}

// Every stored document version
func (h *RewardsHandler) GetAllRulesHandler(w http.ResponseWriter, req *http.Request) {
	docs, err := h.rules.GetAllDocuments(req.Context())
	if err != nil {
		h.Log("DB get", "GetAllRulesHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if docs == nil {
		http.Error(w, "Rule documents not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, docs)
}

// One document by version tag
func (h *RewardsHandler) GetRulesVersionHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	doc, err := h.rules.GetDocument(req.Context(), vars["version"])
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			http.Error(w, "Rule document not found", http.StatusNotFound)
			return
		}
		h.Log("DB get", "GetRulesVersionHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, doc)
}

// Publish a new rule document: store as active, drop the cached one,
// notify other instances through rabbit
func (h *RewardsHandler) PublishRulesHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "PublishRulesHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	doc := &model.RuleDocument{}
	err = json.Unmarshal(body, doc)
	if err != nil {
		h.Log("Unmarshal", "PublishRulesHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if doc.Version == "" {
		http.Error(w, "version is required", http.StatusBadRequest)
		return
	}

	err = h.rules.PublishDocument(req.Context(), *doc)
	if err != nil {
		h.Log("PublishDocument", "PublishRulesHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if h.cache != nil {
		if err := h.cache.InvalidateRuleDocument(req.Context()); err != nil {
			h.Log("Invalidate rule cache", "PublishRulesHandler", err)
		}
	}
	if h.publisher != nil {
		if err := h.publisher.Published(req.Context(), doc.Version); err != nil {
			h.Log("Publish notification", "PublishRulesHandler", err)
		}
	}
	w.WriteHeader(http.StatusCreated)
}

// Storage liveness for deploy probes
func (h *RewardsHandler) HealthHandler(w http.ResponseWriter, req *http.Request) {
	for _, p := range h.pingers {
		if err := p.Ping(req.Context()); err != nil {
			h.Log("Ping", "HealthHandler", err)
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}
