package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/week"
)

type WeekDay struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
}

type WeekAssignment struct {
	Date     time.Time `json:"date"`
	MemberID uuid.UUID `json:"memberId"`
	Value    string    `json:"value"`
	Display  string    `json:"display"`
}

type WeekSchedule struct {
	Anchor      time.Time        `json:"anchor"`
	Days        []WeekDay        `json:"days"`
	Members     []domain.Member  `json:"members"`
	Assignments []WeekAssignment `json:"assignments"`
}

// GetWeekSchedule 返回一周的排班表
// date 指定任意一天（默认今天），窗口会归一化到那一周的周一
// offset 在此基础上前后翻整周
func (h *Handler) GetWeekSchedule(w http.ResponseWriter, r *http.Request) {
	window := week.Current()

	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			h.errorResponse(w, r, "日期格式无效")
			return
		}
		window = week.Normalize(date)
	}

	if offsetParam := r.URL.Query().Get("offset"); offsetParam != "" {
		offset, err := strconv.Atoi(offsetParam)
		if err != nil {
			h.errorResponse(w, r, "偏移量无效")
			return
		}
		window = window.Shift(offset)
	}

	days := make([]WeekDay, 0, 5)
	for _, day := range window.Days() {
		days = append(days, WeekDay{Date: day, Label: week.DayLabel(day)})
	}

	assignments := make([]WeekAssignment, 0)
	for _, assignment := range h.repository.ListAssignmentsForWeek(window) {
		assignments = append(assignments, WeekAssignment{
			Date:     assignment.Date,
			MemberID: assignment.MemberID,
			Value:    assignment.ShiftValue,
			Display:  h.catalog.DisplayLabel(assignment.ShiftValue),
		})
	}

	schedule := WeekSchedule{
		Anchor:      window.Anchor,
		Days:        days,
		Members:     h.repository.GetAllMembers(),
		Assignments: assignments,
	}

	h.successResponse(w, r, "获取周排班表成功", schedule)
}

// SetAssignment 写入一个格子，value 为空等价于清空该格子
func (h *Handler) SetAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date     string `json:"date" validate:"required,datetime=2006-01-02"`
		MemberID string `json:"memberId" validate:"required,uuid"`
		Value    string `json:"value"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		h.errorResponse(w, r, "日期格式无效")
		return
	}
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		h.errorResponse(w, r, "成员ID无效")
		return
	}

	if err := h.repository.SetAssignment(date, memberID, req.Value); err != nil {
		switch {
		case errors.Is(err, domain.ErrMemberNotFound):
			h.errorResponse(w, r, "成员不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "保存排班成功", nil)
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		h.errorResponse(w, r, "日期格式无效")
		return
	}

	memberID, err := uuid.Parse(r.URL.Query().Get("memberId"))
	if err != nil {
		h.errorResponse(w, r, "成员ID无效")
		return
	}

	h.repository.DeleteAssignment(date, memberID)

	h.successResponse(w, r, "删除排班成功", nil)
}
