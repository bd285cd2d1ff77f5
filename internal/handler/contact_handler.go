// Package handler 提供 HTTP 请求处理器
// 本文件处理联系人同步相关的 API 请求
package handler

import (
	"kama_contact_sync/internal/dto/request"
	"kama_contact_sync/internal/infrastructure/middleware"
	"kama_contact_sync/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler 联系人同步请求处理器
type ContactHandler struct {
	svc service.ContactSyncService
}

// NewContactHandler 创建 ContactHandler
func NewContactHandler(svc service.ContactSyncService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// GetContacts 拉取聚合后的联系人
// GET /contacts?fields=PHONE_NUMBERS,EMAILS&sort=name_asc&starredOnly=true&updatedSince=0
// 查询参数: request.GetContactsRequest
// 响应: respond.GetContactsRespond
func (h *ContactHandler) GetContacts(c *gin.Context) {
	var req request.GetContactsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.ListContacts(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetDeletedContacts 拉取删除增量
// GET /contacts/deleted?since=xxx
// 查询参数: request.GetDeletedContactsRequest
// 响应: respond.GetDeletedContactsRespond
func (h *ContactHandler) GetDeletedContacts(c *gin.Context) {
	var req request.GetDeletedContactsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.DeletedSince(c.Request.Context(), middleware.ClientID(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// PublishSnapshot 导出快照到 Kafka
// POST /contacts/publish
// 请求体: request.PublishSnapshotRequest
// 响应: respond.PublishSnapshotRespond
func (h *ContactHandler) PublishSnapshot(c *gin.Context) {
	var req request.PublishSnapshotRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleParamError(c, err)
			return
		}
	}
	data, err := h.svc.PublishSnapshot(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
