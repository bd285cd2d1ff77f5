package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"kama_contact_sync/pkg/errorx"
)

// ResponseData 统一响应结构
type ResponseData struct {
	Code int `json:"code"`           // 业务状态码
	Msg  any `json:"msg"`            // 提示信息，参数错误时为字段到消息的映射
	Data any `json:"data,omitempty"` // 数据
}

func reply(c *gin.Context, code int, msg any, data any) {
	c.JSON(errorx.HTTPStatus(code), ResponseData{Code: code, Msg: msg, Data: data})
}

// HandleSuccess 返回成功响应
func HandleSuccess(c *gin.Context, data any) {
	reply(c, errorx.CodeSuccess, "success", data)
}

// HandleError 返回业务错误
// 非 CodeError 视为系统错误，记录日志后返回服务繁忙
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		if errorx.HTTPStatus(codeErr.Code) >= http.StatusInternalServerError {
			zap.L().Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.Int("code", codeErr.Code),
				zap.Error(err),
			)
		}
		reply(c, codeErr.Code, codeErr.Msg, nil)
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	reply(c, errorx.ErrServerBusy.Code, errorx.ErrServerBusy.Msg, nil)
}

// HandleParamError 返回参数绑定错误，validator 错误按当前语言翻译
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		reply(c, errorx.CodeInvalidParam, RemoveTopStruct(validationErrs.Translate(Trans)), nil)
		return
	}
	zap.L().Debug("param bind error", zap.Error(err))
	reply(c, errorx.ErrInvalidParam.Code, errorx.ErrInvalidParam.Msg, nil)
}
