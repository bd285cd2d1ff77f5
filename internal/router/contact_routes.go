package router

import (
	"kama_contact_sync/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerContactRoutes 注册联系人同步路由，全部需要 Access Token
func (rt *Router) registerContactRoutes(r *gin.Engine) {
	contacts := r.Group("/contacts", middleware.JWTAuth())
	{
		contacts.GET("", rt.handlers.Contact.GetContacts)
		contacts.GET("/deleted", rt.handlers.Contact.GetDeletedContacts)
		contacts.POST("/publish", rt.handlers.Contact.PublishSnapshot)
	}
}
