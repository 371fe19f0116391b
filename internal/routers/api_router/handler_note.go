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

// NoteHandler note API router handler
// NoteHandler 笔记 API 路由处理器
type NoteHandler struct {
	*Handler
}

// NewNoteHandler creates NoteHandler instance
// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{Handler: NewHandler(a)}
}

// List retrieves note list
// @Summary Get note list
// @Description Get notes of the current user, optionally filtered by folder
// @Tags Note
// @Security UserAuthToken
// @Param Authorization header string true "Bearer Token"
// @Produce json
// @Param params query dto.NoteListRequest false "Query Parameters"
// @Success 200 {array} dto.NoteDTO "Success"
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	var params dto.NoteListRequest
	if valid, errs := pkgapp.BindAndValid(c, &params, binding.Query); !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	uid := pkgapp.GetUID(c)
	res, err := h.App.NoteService.List(c.Request.Context(), uid, &params)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToJSON(http.StatusOK, res)
}

// Get retrieves a single note
// @Summary Get note
// @Tags Note
// @Security UserAuthToken
// @Param Authorization header string true "Bearer Token"
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} dto.NoteDTO "Success"
// @Router /api/notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := dto.NoteGetRequest{ID: c.Param("id")}

	uid := pkgapp.GetUID(c)
	res, err := h.App.NoteService.Get(c.Request.Context(), uid, &params)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToJSON(http.StatusOK, res)
}

// Create creates a note
// @Summary Create note
// @Description Create a note, optionally filed into a folder of the current user
// @Tags Note
// @Security UserAuthToken
// @Param Authorization header string true "Bearer Token"
// @Accept json
// @Produce json
// @Param params body dto.NoteCreateRequest true "Create Parameters"
// @Success 201 {object} dto.NoteDTO "Created"
// @Router /api/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	var params dto.NoteCreateRequest
	if valid, errs := pkgapp.BindAndValid(c, &params, binding.JSON); !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	uid := pkgapp.GetUID(c)
	res, err := h.App.NoteService.Create(c.Request.Context(), uid, &params)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToCreated(c.Request.URL.Path+"/"+res.ID, res)
}
