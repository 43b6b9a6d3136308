package http

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/peopleregistry/backend/internal/common/config"
	commonhttp "github.com/peopleregistry/backend/internal/common/http"
	"github.com/peopleregistry/backend/internal/common/logger"
	"github.com/peopleregistry/backend/internal/person/service"
)

type Handler struct {
	people service.Service
	cfg    config.APIConfig
	log    *logger.Logger
}

func NewHandler(people service.Service, cfg config.APIConfig, log *logger.Logger) http.Handler {
	h := &Handler{
		people: people,
		cfg:    cfg,
		log:    log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/pessoas", h.handlePeople)
	mux.HandleFunc("/pessoas/", commonhttp.RequireMethod(http.MethodGet)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.getPerson)))
	mux.HandleFunc("/contagem-pessoas", commonhttp.RequireMethod(http.MethodGet)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.countPeople)))

	return mux
}

func (h *Handler) handlePeople(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		commonhttp.WithTimeout(h.cfg.RequestTimeout)(h.createPerson)(w, r)
	case http.MethodGet:
		commonhttp.WithTimeout(h.cfg.SearchTimeout)(h.searchPeople)(w, r)
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
	}
}

func (h *Handler) createPerson(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeBadRequest, "failed to read request body", nil, "")
		return
	}
	defer r.Body.Close()

	ctx := r.Context()

	doc, err := h.people.Create(ctx, body)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	h.log.WithFields(ctx, logger.Fields{
		"person_id": *doc.ID,
		"action":    "people_create_success",
	}).Info("people/create success")

	w.Header().Set("Location", "/pessoas/"+*doc.ID)
	commonhttp.WriteJSON(w, http.StatusCreated, doc)
}

func (h *Handler) searchPeople(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("t")
	if term == "" {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeSearchTermRequired, "query parameter t is required", nil, "")
		return
	}

	ctx := r.Context()

	docs, err := h.people.Search(ctx, term)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	h.log.WithFields(ctx, logger.Fields{
		"term":    term,
		"results": len(docs),
		"action":  "people_search_success",
	}).Info("people/search success")

	commonhttp.WriteJSON(w, http.StatusOK, docs)
}

func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := commonhttp.ExtractPersonIDFromPath(r.URL.Path, "/pessoas/")
	if !ok {
		if strings.Trim(strings.TrimPrefix(r.URL.Path, "/pessoas/"), "/") == "" {
			commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodePersonIDRequired, "person id is required", nil, "")
		} else {
			commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidPath, "unexpected path segments after person id", nil, "")
		}
		return
	}

	if err := commonhttp.ValidateUUID(id); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	ctx := r.Context()

	doc, err := h.people.GetByID(ctx, id)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) countPeople(w http.ResponseWriter, r *http.Request) {
	count, err := h.people.Count(r.Context())
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(strconv.FormatInt(count, 10)))
}
