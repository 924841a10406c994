package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/services"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

func validTicketStatus(s string) bool {
	switch s {
	case models.TicketOpen, models.TicketInProgress, models.TicketResolved, models.TicketClosed:
		return true
	}
	return false
}

func validPriority(p string) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent:
		return true
	}
	return false
}

// GET /admin/support?status=&priority=&page=&per_page=
func AdminListSupport(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.SupportRequest{})
	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", status)
	}
	if priority := ctx.URLParamDefault("priority", ""); priority != "" {
		q = q.Where("priority = ?", priority)
	}

	var total int64
	q.Count(&total)

	var items []models.SupportRequest
	if err := q.Preload("User").Preload("Hotel").
		Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").
		Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// TicketUpdateInput mutates status, priority or the admin response.
type TicketUpdateInput struct {
	Status        *string `json:"status"`
	Priority      *string `json:"priority"`
	AdminResponse *string `json:"adminResponse"`
}

// PATCH /admin/support/:id
func AdminUpdateSupport(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input TicketUpdateInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "invalid body")
		return
	}
	if input.Status != nil && !validTicketStatus(*input.Status) {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_status", "status must be open/in_progress/resolved/closed")
		return
	}
	if input.Priority != nil && !validPriority(*input.Priority) {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_priority", "priority must be low/medium/high/urgent")
		return
	}

	var req models.SupportRequest
	if err := storage.DB.First(&req, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	if req.Status == models.TicketEscalated {
		// Escalation is one-way; the ticket is handled on the escalation.
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "escalated", "ticket was escalated; update the escalation instead")
		return
	}

	before := req
	if input.Status != nil {
		req.Status = *input.Status
		if *input.Status == models.TicketResolved && req.ResolvedAt == nil {
			now := time.Now().UTC()
			req.ResolvedAt = &now
		}
	}
	if input.Priority != nil {
		req.Priority = *input.Priority
	}
	if input.AdminResponse != nil {
		req.AdminResponse = strings.TrimSpace(*input.AdminResponse)
	}
	if err := storage.DB.Save(&req).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	if input.AdminResponse != nil && req.AdminResponse != "" {
		services.NewNotificationService().NotifyUser(req.UserID, "support_reply",
			"Support response", req.AdminResponse, "support_request", req.ID)
	}

	utils.Audit(ctx, "support.update", "support_request", req.ID, before, req)
	ctx.JSON(iris.Map{"data": req})
}

// POST /admin/support/:id/escalate — one-way promotion to an escalation.
func AdminEscalateSupport(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		Priority string `json:"priority"`
	}
	ctx.ReadJSON(&body)
	priority := body.Priority
	if priority == "" {
		priority = models.PriorityHigh
	}
	if !validPriority(priority) {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_priority", "priority must be low/medium/high/urgent")
		return
	}

	var req models.SupportRequest
	if err := storage.DB.First(&req, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	if req.Status == models.TicketEscalated {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "already_escalated", "ticket is already escalated")
		return
	}

	esc := models.Escalation{
		SourceRequestID: req.ID,
		UserID:          req.UserID,
		HotelID:         req.HotelID,
		Subject:         req.Subject,
		Message:         req.Message,
		Status:          models.TicketOpen,
		Priority:        priority,
	}

	err = storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&esc).Error; err != nil {
			return err
		}
		return tx.Model(&req).Update("status", models.TicketEscalated).Error
	})
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	services.NewNotificationService().NotifyAdmins("escalation",
		"Support request escalated", esc.Subject, "escalation", esc.ID)

	utils.Audit(ctx, "support.escalate", "support_request", req.ID, nil, esc)
	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(iris.Map{"data": esc})
}

// GET /admin/escalations?status=&priority=&page=&per_page=
func AdminListEscalations(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Escalation{})
	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", status)
	}
	if priority := ctx.URLParamDefault("priority", ""); priority != "" {
		q = q.Where("priority = ?", priority)
	}

	var total int64
	q.Count(&total)

	var items []models.Escalation
	if err := q.Preload("User").Preload("Hotel").Preload("SourceRequest").
		Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").
		Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// PATCH /admin/escalations/:id
func AdminUpdateEscalation(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input TicketUpdateInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "invalid body")
		return
	}
	if input.Status != nil && !validTicketStatus(*input.Status) {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_status", "status must be open/in_progress/resolved/closed")
		return
	}
	if input.Priority != nil && !validPriority(*input.Priority) {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_priority", "priority must be low/medium/high/urgent")
		return
	}

	var esc models.Escalation
	if err := storage.DB.First(&esc, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	before := esc
	if input.Status != nil {
		esc.Status = *input.Status
		if *input.Status == models.TicketResolved && esc.ResolvedAt == nil {
			now := time.Now().UTC()
			esc.ResolvedAt = &now
		}
	}
	if input.Priority != nil {
		esc.Priority = *input.Priority
	}
	if input.AdminResponse != nil {
		esc.AdminResponse = strings.TrimSpace(*input.AdminResponse)
	}
	if err := storage.DB.Save(&esc).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	if input.AdminResponse != nil && esc.AdminResponse != "" {
		services.NewNotificationService().NotifyUser(esc.UserID, "escalation_reply",
			"Escalation response", esc.AdminResponse, "escalation", esc.ID)
	}

	utils.Audit(ctx, "escalation.update", "escalation", esc.ID, before, esc)
	ctx.JSON(iris.Map{"data": esc})
}
