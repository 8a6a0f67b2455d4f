package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rohits-web03/usefulutilities/internal/services"
	"github.com/rohits-web03/usefulutilities/internal/utils"
)

// CatalogHandler exposes the per-utility download counters.
type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type DownloadRequest struct {
	UtilityName string `json:"utilityName"`
}

// RecordDownload godoc
// @Summary Record a utility download
// @Description Increments the download counter for the named utility, creating it on first download.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param input body DownloadRequest true "Utility name"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]string
// @Router /api/download [post]
func (h *CatalogHandler) RecordDownload(w http.ResponseWriter, r *http.Request) {
	var input DownloadRequest

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := h.catalog.RecordDownload(input.UtilityName); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

// GetDownloads godoc
// @Summary Get a utility's download count
// @Description Returns the download counter for the named utility, 0 if it has never been downloaded.
// @Tags Catalog
// @Produce json
// @Param name path string true "Utility name"
// @Success 200 {object} map[string]int64
// @Failure 500 {object} map[string]string
// @Router /api/downloads/{name} [get]
func (h *CatalogHandler) GetDownloads(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	downloads, err := h.catalog.GetDownloads(name)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{"downloads": downloads})
}
