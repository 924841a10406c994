package main

import (
	"log"
	"os"

	"github.com/Shahanees1998/HotelManagement-sub000/routes"
	"github.com/Shahanees1998/HotelManagement-sub000/services"
	"github.com/Shahanees1998/HotelManagement-sub000/storage"
	"github.com/Shahanees1998/HotelManagement-sub000/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the dashboard frontends
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	api := app.Party("/api")

	public := api.Party("/public")
	{
		public.Get("/forms/{slug}", routes.PublicGetForm)
		public.Post("/forms/{slug}/submit", routes.PublicSubmitReview)
	}

	hotel := api.Party("/hotel", accessTokenVerifierMiddleware, utils.HotelScopeMiddleware)
	{
		hotel.Get("/forms", routes.HotelListForms)
		hotel.Post("/forms", routes.HotelCreateForm)
		hotel.Get("/forms/{id:uint}", routes.HotelGetForm)
		hotel.Put("/forms/{id:uint}", routes.HotelUpdateForm)
		hotel.Delete("/forms/{id:uint}", routes.HotelDeleteForm)

		hotel.Get("/reviews", routes.HotelListReviews)
		hotel.Get("/reviews/{id:uint}", routes.HotelGetReview)
		hotel.Post("/reviews/{id:uint}/reply", routes.HotelReplyReview)
		hotel.Patch("/reviews/{id:uint}/update-status", routes.HotelUpdateReviewStatus)
		hotel.Delete("/reviews/{id:uint}/delete", routes.HotelDeleteReview)

		hotel.Get("/dashboard", routes.HotelDashboard)
		hotel.Get("/dashboard/export", routes.HotelDashboardExport)

		hotel.Get("/members", routes.HotelListMembers)
		hotel.Post("/members", routes.HotelCreateMember)
		hotel.Get("/members/template", routes.HotelMemberTemplate)
		hotel.Post("/members/bulk", routes.HotelBulkUploadMembers)

		hotel.Get("/support", routes.HotelListSupport)
		hotel.Post("/support", routes.HotelCreateSupport)
	}

	admin := api.Party("/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/analytics", routes.AdminAnalytics)
		admin.Get("/activity", routes.AdminActivity)

		admin.Get("/users", routes.AdminListUsers)
		admin.Patch("/users/{id:uint}/role", utils.SuperAdminOnlyMiddleware, routes.AdminChangeUserRole)

		admin.Get("/hotels", routes.AdminListHotels)
		admin.Get("/hotels/{id:uint}", routes.AdminGetHotel)
		admin.Patch("/hotels/{id:uint}/plan", routes.AdminChangeHotelPlan)

		admin.Get("/subscriptions", routes.AdminListSubscriptions)
		admin.Post("/subscriptions/{id:uint}/cancel", routes.AdminCancelSubscription)

		admin.Get("/support", routes.AdminListSupport)
		admin.Patch("/support/{id:uint}", routes.AdminUpdateSupport)
		admin.Post("/support/{id:uint}/escalate", routes.AdminEscalateSupport)
		admin.Get("/escalations", routes.AdminListEscalations)
		admin.Patch("/escalations/{id:uint}", routes.AdminUpdateEscalation)
	}

	notifications := api.Party("/notifications", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		notifications.Get("/", routes.ListNotifications)
		notifications.Patch("/{id:uint}/read", routes.MarkNotificationRead)
		notifications.Post("/read-all", routes.MarkAllNotificationsRead)
	}

	sweep := services.StartSubscriptionSweep()
	defer sweep.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
