package routes

import (
	"net/http"
	"time"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
)

// GET /notifications?unread=&page=&per_page=
func ListNotifications(ctx iris.Context) {
	userID := utils.UserIDFromContext(ctx)
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Notification{}).Where("user_id = ?", userID)
	if ctx.URLParamDefault("unread", "") == "true" {
		q = q.Where("is_read = ?", false)
	}

	var total int64
	q.Count(&total)

	var unread int64
	storage.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&unread)

	var items []models.Notification
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	ctx.JSON(iris.Map{
		"data":  items,
		"meta":  iris.Map{"page": page, "per_page": perPage, "total": total, "unread": unread},
		"links": iris.Map{},
	})
}

// PATCH /notifications/:id/read
func MarkNotificationRead(ctx iris.Context) {
	userID := utils.UserIDFromContext(ctx)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var n models.Notification
	if err := storage.DB.Where("user_id = ?", userID).First(&n, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	if !n.IsRead {
		now := time.Now().UTC()
		storage.DB.Model(&n).Updates(map[string]interface{}{"is_read": true, "read_at": &now})
	}
	ctx.JSON(iris.Map{"data": iris.Map{"read": true}})
}

// POST /notifications/read-all
func MarkAllNotificationsRead(ctx iris.Context) {
	userID := utils.UserIDFromContext(ctx)
	now := time.Now().UTC()
	res := storage.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now})
	if res.Error != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", res.Error.Error())
		return
	}
	ctx.JSON(iris.Map{"data": iris.Map{"marked": res.RowsAffected}})
}
