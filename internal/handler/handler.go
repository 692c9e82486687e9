package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/repository"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/shift"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	catalog    *shift.Catalog
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, catalog *shift.Catalog) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		catalog:    catalog,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 班次目录
	h.Mux.Route("/shifts", func(r chi.Router) {
		r.Get("/", h.GetAllShifts)
		r.Post("/", h.AddCustomShift)
	})

	// 成员列表
	h.Mux.Route("/members", func(r chi.Router) {
		r.Get("/", h.GetAllMembers)
		r.Post("/", h.CreateMember)
		r.Post("/reorder", h.ReorderMembers)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.member)
			r.Patch("/", h.RenameMember)
			r.Delete("/", h.DeleteMember)
		})
	})

	// 周排班表
	h.Mux.Route("/schedule", func(r chi.Router) {
		r.Get("/", h.GetWeekSchedule)
		r.Route("/assignments", func(r chi.Router) {
			r.Put("/", h.SetAssignment)
			r.Delete("/", h.DeleteAssignment)
		})
	})
}
