// Package api exposes the navigation engine over HTTP. Every response
// carries the same envelope the company backend uses, so clients read
// one shape everywhere.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	stderrors "onboarding-engine/internal/common/errors"
	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/common/metrics"
	"onboarding-engine/internal/company"
	"onboarding-engine/internal/draft"
	"onboarding-engine/internal/gate"
	"onboarding-engine/internal/menu"
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/session"
	"onboarding-engine/internal/steps"
	"onboarding-engine/internal/validation"
)

type Handler struct {
	company  *company.Service
	drafts   *draft.Store
	sessions *session.Store
	log      logger.Logger
	submit   draft.SubmitFunc
}

// NewHandler wires the engine services into one HTTP surface. submit is
// invoked when the partner draft is submitted; it may be nil in tests.
func NewHandler(companySvc *company.Service, drafts *draft.Store, sessions *session.Store, submit draft.SubmitFunc, log logger.Logger) *Handler {
	return &Handler{
		company:  companySvc,
		drafts:   drafts,
		sessions: sessions,
		submit:   submit,
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/menus", h.GetMenus)
	r.GET("/navigation", h.GetNavigation)
	r.POST("/refresh", h.Refresh)

	r.GET("/gate/entry", h.GateEntry)
	r.GET("/gate/step", h.GateStep)

	r.GET("/partner-draft", h.GetDraft)
	r.DELETE("/partner-draft", h.ClearDraft)
	r.PUT("/partner-draft/information", h.PutInformation)
	r.PUT("/partner-draft/address", h.PutAddress)
	r.PUT("/partner-draft/document", h.PutDocument)
	r.GET("/partner-draft/state", h.GetDraftState)
	r.POST("/partner-draft/submit", h.SubmitDraft)
}

// ==========================
// Response Envelope
// ==========================

type envelope struct {
	MetaData models.MetaData  `json:"metaData"`
	Data     interface{}      `json:"data,omitempty"`
	Error    models.ErrorInfo `json:"error"`
}

func respond(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{
		MetaData: models.MetaData{
			RequestID: uuid.New().String(),
			EventTime: time.Now().UTC().Format(time.RFC3339),
			Status:    true,
		},
		Data: data,
	})
}

func respondError(c *gin.Context, err error) {
	stdErr := stderrors.Normalize(err)
	c.JSON(stderrors.HTTPStatus(stdErr.Code), envelope{
		MetaData: models.MetaData{
			RequestID: uuid.New().String(),
			EventTime: time.Now().UTC().Format(time.RFC3339),
			Status:    false,
		},
		Error: models.ErrorInfo{Reason: stdErr.Message},
	})
}

// ==========================
// Navigation Endpoints
// ==========================

func (h *Handler) GetMenus(c *gin.Context) {
	visible := make([]models.Menu, 0)
	for _, m := range h.company.Menus() {
		if m.ShowInList {
			visible = append(visible, m)
		}
	}
	respond(c, gin.H{
		"menus":         visible,
		"isCalculating": h.company.IsCalculating(),
	})
}

type navigationQuery struct {
	MenuID int    `form:"menuId" binding:"required"`
	Path   string `form:"path"`
}

func (h *Handler) GetNavigation(c *gin.Context) {
	var q navigationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, stderrors.NewMenuNotFoundError(0))
		return
	}

	menus := h.company.Menus()
	if menu.FindByID(menus, q.MenuID) == nil {
		respondError(c, stderrors.NewMenuNotFoundError(q.MenuID))
		return
	}

	// The add-partner wizard carries its own session-local step list.
	var override []models.SubStep
	if q.MenuID == menu.MenuAddPartner {
		override = h.drafts.FormNavigation()
	}

	respond(c, steps.Resolve(menus, q.MenuID, q.Path, override))
}

func (h *Handler) Refresh(c *gin.Context) {
	if err := h.company.Refresh(c.Request.Context()); err != nil {
		respondError(c, stderrors.NewRecordFetchFailedError(err))
		return
	}
	respond(c, gin.H{"refreshed": true})
}

// ==========================
// Gate Endpoints
// ==========================

func (h *Handler) GateEntry(c *gin.Context) {
	status := h.sessions.Status()

	var decision gate.Decision
	if c.Query("surface") == "public" {
		decision = gate.Public(status, h.company.Record())
	} else {
		decision = gate.Private(status)
	}

	if decision.Outcome == gate.Redirect {
		metrics.GateRedirects.WithLabelValues("entry").Inc()
	}
	respond(c, decision)
}

func (h *Handler) GateStep(c *gin.Context) {
	path := c.Query("path")
	decision := gate.StepAccess(h.company.Menus(), path)
	if decision.Outcome == gate.Redirect {
		metrics.GateRedirects.WithLabelValues("step").Inc()
	}
	respond(c, decision)
}

// ==========================
// Partner Draft Endpoints
// ==========================

func (h *Handler) GetDraft(c *gin.Context) {
	respond(c, h.drafts.Draft())
}

func (h *Handler) ClearDraft(c *gin.Context) {
	h.drafts.Clear(c.Request.Context())
	respond(c, gin.H{"cleared": true})
}

func (h *Handler) PutInformation(c *gin.Context) {
	var payload models.PartnerInformationDraft
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, stderrors.NewDraftDecodeFailedError(err))
		return
	}
	h.drafts.UpdateInformation(c.Request.Context(), payload)
	metrics.DraftWrites.WithLabelValues("information").Inc()
	respond(c, h.drafts.Draft().Information)
}

func (h *Handler) PutAddress(c *gin.Context) {
	var payload models.PartnerAddressDraft
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, stderrors.NewDraftDecodeFailedError(err))
		return
	}
	h.drafts.UpdateAddress(c.Request.Context(), payload)
	metrics.DraftWrites.WithLabelValues("address").Inc()
	respond(c, h.drafts.Draft().Address)
}

func (h *Handler) PutDocument(c *gin.Context) {
	var payload models.PartnerDocumentDraft
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, stderrors.NewDraftDecodeFailedError(err))
		return
	}
	h.drafts.UpdateDocument(c.Request.Context(), payload)
	metrics.DraftWrites.WithLabelValues("document").Inc()
	respond(c, h.drafts.Draft().Document)
}

func (h *Handler) GetDraftState(c *gin.Context) {
	respond(c, h.drafts.FormState(c.Query("path")))
}

func (h *Handler) SubmitDraft(c *gin.Context) {
	result, err := validation.ValidateDraft(h.drafts.Draft())
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.Valid {
		metrics.DraftSubmits.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusUnprocessableEntity, envelope{
			MetaData: models.MetaData{
				RequestID: uuid.New().String(),
				EventTime: time.Now().UTC().Format(time.RFC3339),
				Status:    false,
			},
			Data:  gin.H{"validation": result},
			Error: models.ErrorInfo{Reason: "partner draft validation failed"},
		})
		return
	}

	submit := h.submit
	if submit == nil {
		submit = func(ctx context.Context, d models.PartnerDraft) error { return nil }
	}

	if err := h.drafts.Submit(c.Request.Context(), submit); err != nil {
		if err == draft.ErrSubmitInFlight {
			metrics.DraftSubmits.WithLabelValues("in_flight").Inc()
			respondError(c, stderrors.NewDraftSubmitInFlightError())
			return
		}
		metrics.DraftSubmits.WithLabelValues("error").Inc()
		respondError(c, stderrors.NewDraftSubmitFailedError(err))
		return
	}

	metrics.DraftSubmits.WithLabelValues("success").Inc()
	if err := h.company.Refresh(c.Request.Context()); err != nil {
		h.log.Warn("refresh after submit failed", map[string]interface{}{"error": err.Error()})
	}
	respond(c, gin.H{"submitted": true})
}
