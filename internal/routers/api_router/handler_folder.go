package api_router

import (
	"net/http"

	"github.com/haierkeys/note-folder-service/internal/app"
	"github.com/haierkeys/note-folder-service/internal/dto"
	pkgapp "github.com/haierkeys/note-folder-service/pkg/app"
	"github.com/haierkeys/note-folder-service/pkg/code"
	apperrors "github.com/haierkeys/note-folder-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type FolderHandler struct {
	*Handler
}

func NewFolderHandler(a *app.App) *FolderHandler {
	return &FolderHandler{Handler: NewHandler(a)}
}

// List retrieves folder list
// @Summary Get folder list
// @Description Get all folders of the current user ordered by name
// @Tags Folder
// @Security UserAuthToken
// @Param Authorization header string true "Bearer Token"
// @Produce json
// @Success 200 {array} dto.FolderDTO "Success"
// @Router /api/folders [get]
func (h *FolderHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	res, err := h.App.FolderService.List(c.Request.Context(), uid)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToJSON(http.StatusOK, res)
}

// Get retrieves a single folder
// @Summary Get folder
// @Description Get a folder of the current user; folders of other users are reported as not found
// @Tags Folder
// @Security UserAuthToken
// @Param Authorization header string true "Bearer Token"
// @Produce json
// @Param id path string true "Folder ID"
// @Success 200 {object} dto.FolderDTO "Success"
// @Failure 400 {object} pkgapp.Res "Invalid id"
// @Failure 404 {object} pkgapp.Res "Not Found"
// @Router /api/folders/{id} [get]
func (h *FolderHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := dto.FolderGetRequest{ID: c.Param("id")}

	uid := pkgapp.GetUID(c)
	res, err := h.App.FolderService.Get(c.Request.Context(), uid, &params)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToJSON(http.StatusOK, res)
}

// Create creates a folder
// @Summary Create folder
// @Description Create a folder owned by the current user; names are unique per user
// @Tags Folder
// @Security UserAuthToken
// @Param Authorization header string true "Bearer Token"
// @Accept json
// @Produce json
// @Param params body dto.FolderCreateRequest true "Create Parameters"
// @Success 201 {object} dto.FolderDTO "Created"
// @Failure 400 {object} pkgapp.Res "Missing name or duplicate name"
// @Router /api/folders [post]
func (h *FolderHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	var params dto.FolderCreateRequest
	if valid, errs := pkgapp.BindAndValid(c, &params, binding.JSON); !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	uid := pkgapp.GetUID(c)
	res, err := h.App.FolderService.Create(c.Request.Context(), uid, &params)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToCreated(c.Request.URL.Path+"/"+res.ID, res)
}

// Update renames a folder
// @Summary Rename folder
// @Description Rename a folder owned by the current user
// @Tags Folder
// @Security UserAuthToken
// @Param Authorization header string true "Bearer Token"
// @Accept json
// @Produce json
// @Param id path string true "Folder ID"
// @Param params body dto.FolderUpdateRequest true "Update Parameters"
// @Success 200 {object} dto.FolderDTO "Success"
// @Failure 400 {object} pkgapp.Res "Invalid parameters or not owned"
// @Failure 404 {object} pkgapp.Res "Not Found"
// @Router /api/folders/{id} [put]
func (h *FolderHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	var params dto.FolderUpdateRequest
	if valid, errs := pkgapp.BindAndValid(c, &params, binding.JSON); !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}
	params.ID = c.Param("id")

	uid := pkgapp.GetUID(c)
	res, err := h.App.FolderService.Update(c.Request.Context(), uid, &params)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToJSON(http.StatusOK, res)
}

// Delete deletes a folder
// @Summary Delete folder
// @Description Delete a folder owned by the current user and detach its notes
// @Tags Folder
// @Security UserAuthToken
// @Param Authorization header string true "Bearer Token"
// @Param id path string true "Folder ID"
// @Success 204 "No Content"
// @Failure 400 {object} pkgapp.Res "Invalid id or not owned"
// @Failure 404 {object} pkgapp.Res "Not Found"
// @Router /api/folders/{id} [delete]
func (h *FolderHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := dto.FolderDeleteRequest{ID: c.Param("id")}

	uid := pkgapp.GetUID(c)
	if err := h.App.FolderService.Delete(c.Request.Context(), uid, &params); err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToNoContent()
}
