package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/response"
)

type testimonialHandlers struct {
	ResponseHandler response.ResponseHandler
	TestimonialSvc  TestimonialService
}

func NewTestimonialHandlers(deps *Deps) *testimonialHandlers {
	return &testimonialHandlers{
		ResponseHandler: deps.ResponseHandler,
		TestimonialSvc:  deps.TestimonialSvc,
	}
}

func (h *testimonialHandlers) TestimonialRoutes(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTestimonials)
	r.Get("/{id}", h.GetTestimonial)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", h.CreateTestimonial)
		r.Put("/{id}", h.UpdateTestimonial)
		r.Delete("/{id}", h.DeleteTestimonial)
	})
	return r
}

func (h *testimonialHandlers) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	list, err := h.TestimonialSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, list)
}

func (h *testimonialHandlers) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	t, err := h.TestimonialSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, t)
}

func (h *testimonialHandlers) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req dto.TestimonialRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	t, err := h.TestimonialSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, t)
}

func (h *testimonialHandlers) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req dto.TestimonialRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	t, err := h.TestimonialSvc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, t)
}

func (h *testimonialHandlers) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := h.TestimonialSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

type highlightHandlers struct {
	ResponseHandler response.ResponseHandler
	HighlightSvc    HighlightService
}

func NewHighlightHandlers(deps *Deps) *highlightHandlers {
	return &highlightHandlers{
		ResponseHandler: deps.ResponseHandler,
		HighlightSvc:    deps.HighlightSvc,
	}
}

func (h *highlightHandlers) HighlightRoutes(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListHighlights)
	r.Get("/{id}", h.GetHighlight)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", h.CreateHighlight)
		r.Put("/{id}", h.UpdateHighlight)
		r.Delete("/{id}", h.DeleteHighlight)
	})
	return r
}

func (h *highlightHandlers) ListHighlights(w http.ResponseWriter, r *http.Request) {
	list, err := h.HighlightSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, list)
}

func (h *highlightHandlers) GetHighlight(w http.ResponseWriter, r *http.Request) {
	hl, err := h.HighlightSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, hl)
}

func (h *highlightHandlers) CreateHighlight(w http.ResponseWriter, r *http.Request) {
	var req dto.HighlightRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	hl, err := h.HighlightSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, hl)
}

func (h *highlightHandlers) UpdateHighlight(w http.ResponseWriter, r *http.Request) {
	var req dto.HighlightRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	hl, err := h.HighlightSvc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, hl)
}

func (h *highlightHandlers) DeleteHighlight(w http.ResponseWriter, r *http.Request) {
	if err := h.HighlightSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
