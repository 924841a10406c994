package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// UserIDFromTokenMiddleware extracts user ID from JWT token and stores it in context
func UserIDFromTokenMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// HotelScopeMiddleware ensures the requester belongs to a tenant hotel and
// stores userID/hotelID/role for downstream handlers. Every /hotel route
// is scoped to the hotel embedded in the token, never to a request field.
func HotelScopeMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.HotelID == nil || *claims.HotelID == 0 {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "hotel account required"})
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Values().Set("hotelID", *claims.HotelID)
	ctx.Values().Set("role", claims.Role)
	ctx.Next()
}

// AdminOnlyMiddleware ensures the requester has admin or super_admin role
func AdminOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	role := claims.Role
	if role != "admin" && role != "super_admin" {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "admin access required"})
		return
	}
	// Ensure userID is available to downstream handlers
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// SuperAdminOnlyMiddleware ensures only super admins can access
func SuperAdminOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	role := claims.Role
	if role != "super_admin" {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "super_admin access required"})
		return
	}
	ctx.Next()
}

// HotelIDFromContext returns the tenant id set by HotelScopeMiddleware.
func HotelIDFromContext(ctx iris.Context) uint {
	if v := ctx.Values().Get("hotelID"); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// UserIDFromContext returns the requester id set by the auth middlewares.
func UserIDFromContext(ctx iris.Context) uint {
	if v := ctx.Values().Get("userID"); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
