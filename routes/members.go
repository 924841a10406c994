package routes

import (
	"io"
	"net/http"
	"strings"

	"github.com/Shahanees1998/HotelManagement-sub000/models"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/kataras/iris/v12"
)

// GET /hotel/members?q=&status=&page=&per_page=
func HotelListMembers(ctx iris.Context) {
	hotelID := utils.HotelIDFromContext(ctx)
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Member{}).Where("hotel_id = ?", hotelID)
	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", strings.ToUpper(status))
	}
	if search := strings.TrimSpace(ctx.URLParamDefault("q", "")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(first_name) LIKE ? OR lower(last_name) LIKE ? OR lower(email) LIKE ?", like, like, like)
	}

	var total int64
	q.Count(&total)

	var members []models.Member
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&members).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, members, page, perPage, total)
}

// MemberInput is a single manually-added member.
type MemberInput struct {
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone"`
	Status           string `json:"status"`
	MembershipNumber string `json:"membershipNumber"`
	JoinDate         string `json:"joinDate"`
	PaidDate         string `json:"paidDate"`
}

// POST /hotel/members
func HotelCreateMember(ctx iris.Context) {
	var input MemberInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	status := strings.ToUpper(input.Status)
	if status == "" {
		status = models.MemberPending
	}
	member := models.Member{
		HotelID:          utils.HotelIDFromContext(ctx),
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            strings.ToLower(input.Email),
		Phone:            utils.NormalizePhoneNumber(input.Phone),
		Status:           status,
		MembershipNumber: input.MembershipNumber,
		JoinDate:         input.JoinDate,
		PaidDate:         input.PaidDate,
	}
	if err := storage.DB.Create(&member).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(iris.Map{"data": member})
}

// GET /hotel/members/template — the CSV header hotels fill in.
func HotelMemberTemplate(ctx iris.Context) {
	ctx.Header("Content-Disposition", `attachment; filename="members_template.csv"`)
	ctx.ContentType("text/csv")
	ctx.WriteString(utils.MemberCSVHeader + "\n")
}

// POST /hotel/members/bulk — CSV body (text/csv or raw). Rejected rows are
// returned as row-indexed error strings; accepted rows are inserted.
func HotelBulkUploadMembers(ctx iris.Context) {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil || len(body) == 0 {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_payload", "csv body is required")
		return
	}

	rows, rowErrors := utils.ParseMemberCSV(string(body))
	if len(rows) == 0 && len(rowErrors) > 0 {
		ctx.StatusCode(http.StatusUnprocessableEntity)
		ctx.JSON(iris.Map{"error": "invalid_csv", "message": "no valid rows", "rowErrors": rowErrors})
		return
	}

	hotelID := utils.HotelIDFromContext(ctx)
	imported := 0
	for _, r := range rows {
		member := models.Member{
			HotelID:          hotelID,
			FirstName:        r.FirstName,
			LastName:         r.LastName,
			Email:            strings.ToLower(r.Email),
			Phone:            utils.NormalizePhoneNumber(r.Phone),
			Status:           r.Status,
			MembershipNumber: r.MembershipNumber,
			JoinDate:         r.JoinDate,
			PaidDate:         r.PaidDate,
		}
		if err := storage.DB.Create(&member).Error; err != nil {
			rowErrors = append(rowErrors, "insert failed for "+r.Email+": "+err.Error())
			continue
		}
		imported++
	}

	ctx.JSON(iris.Map{
		"data":  iris.Map{"imported": imported, "rejected": len(rowErrors)},
		"meta":  iris.Map{"rowErrors": rowErrors},
		"links": iris.Map{},
	})
}
