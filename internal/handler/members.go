package handler

import (
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
)

func (h *Handler) GetAllMembers(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取成员列表成功", h.repository.GetAllMembers())
}

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	member, err := h.repository.CreateMember(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyName):
			h.errorResponse(w, r, "成员姓名不能为空")
		case errors.Is(err, domain.ErrDuplicateName):
			h.errorResponse(w, r, "成员姓名已存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "添加成员成功", member)
}

func (h *Handler) RenameMember(w http.ResponseWriter, r *http.Request) {
	member := r.Context().Value(MemberCtxKey).(*domain.Member)

	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	renamed, err := h.repository.RenameMember(member.ID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyName):
			h.errorResponse(w, r, "成员姓名不能为空")
		case errors.Is(err, domain.ErrDuplicateName):
			h.errorResponse(w, r, "成员姓名已存在")
		case errors.Is(err, domain.ErrMemberNotFound):
			h.errorResponse(w, r, "成员不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "修改成员姓名成功", renamed)
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	member := r.Context().Value(MemberCtxKey).(*domain.Member)

	if err := h.repository.DeleteMember(member.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrMemberNotFound):
			h.errorResponse(w, r, "成员不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除成员成功", nil)
}

func (h *Handler) ReorderMembers(w http.ResponseWriter, r *http.Request) {
	// 这里用指针来区分"没传"和下标 0
	var req struct {
		From *int `json:"from" validate:"required"`
		To   *int `json:"to" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.ReorderMembers(*req.From, *req.To); err != nil {
		switch {
		case errors.Is(err, domain.ErrIndexOutOfRange):
			h.errorResponse(w, r, "移动位置超出范围")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "调整成员顺序成功", h.repository.GetAllMembers())
}
