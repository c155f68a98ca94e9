package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/errs"
	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/internal/response"
)

type packageHandlers struct {
	ResponseHandler response.ResponseHandler
	PackageSvc      PackageService
}

func NewPackageHandlers(deps *Deps) *packageHandlers {
	return &packageHandlers{
		ResponseHandler: deps.ResponseHandler,
		PackageSvc:      deps.PackageSvc,
	}
}

// PackageRoutes serves reads publicly; writes go through requireAuth.
func (h *packageHandlers) PackageRoutes(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListPackages)
	r.Get("/{category}", h.GetCategory)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", h.CreatePackage)
		r.Post("/initialize", h.InitializeCategories)
		r.Put("/{category}/{index}", h.UpdatePackage)
		r.Delete("/{category}/{index}", h.DeletePackage)
	})
	return r
}

func (h *packageHandlers) ListPackages(w http.ResponseWriter, r *http.Request) {
	q := dto.PackageQuery{
		Category: models.Category(r.URL.Query().Get("category")),
		Search:   r.URL.Query().Get("search"),
	}
	resp, err := h.PackageSvc.List(r.Context(), q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *packageHandlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	items, err := h.PackageSvc.Get(r.Context(), models.Category(chi.URLParam(r, "category")))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, items)
}

func (h *packageHandlers) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req dto.PackageRequest
	if err := decodeJSON(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	rec, err := h.PackageSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, rec)
}

func (h *packageHandlers) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	category, index, err := packageAddress(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	var req dto.PackageEditRequest
	if err := decodeJSON(r, &req.PackageRequest); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	req.ETag = ifMatch(r)

	rec, err := h.PackageSvc.Update(r.Context(), category, index, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, rec)
}

func (h *packageHandlers) DeletePackage(w http.ResponseWriter, r *http.Request) {
	category, index, err := packageAddress(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.PackageSvc.Delete(r.Context(), category, index, ifMatch(r)); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *packageHandlers) InitializeCategories(w http.ResponseWriter, r *http.Request) {
	res, err := h.PackageSvc.Initialize(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, res)
}

func packageAddress(r *http.Request) (models.Category, int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return "", 0, errs.NewValidationError("index must be an integer")
	}
	return models.Category(chi.URLParam(r, "category")), index, nil
}

// ifMatch returns the If-Match etag without quotes or weak prefix.
func ifMatch(r *http.Request) string {
	v := strings.TrimSpace(r.Header.Get("If-Match"))
	v = strings.TrimPrefix(v, "W/")
	return strings.Trim(v, `"`)
}
