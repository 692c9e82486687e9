package handler

import (
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
)

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取班次列表成功", h.catalog.List())
}

func (h *Handler) AddCustomShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label string `json:"label" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	def, err := h.catalog.Add(req.Label)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyName):
			h.errorResponse(w, r, "班次名称不能为空")
		case errors.Is(err, domain.ErrDuplicateName):
			h.errorResponse(w, r, "班次名称已存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "添加自定义班次成功", def)
}
