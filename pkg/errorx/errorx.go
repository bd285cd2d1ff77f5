// Package errorx 定义带业务码的错误，以及业务码到 HTTP 状态码的映射
package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

// 业务状态码
const (
	CodeSuccess        = 1000 // 成功
	CodeInvalidParam   = 1001 // 请求参数错误
	CodeServerBusy     = 1005 // 服务繁忙
	CodeUnauthorized   = 1006 // 未授权/认证失败
	CodeNotFound       = 1008 // 资源不存在
	CodeDBError        = 1010 // 数据库错误
	CodeCacheError     = 1011 // 缓存错误
	CodeSchemaMismatch = 1012 // 数据源列结构与约定不符
	CodeMQError        = 1013 // 消息队列错误
	CodeUnavailable    = 1014 // 功能未启用
)

var (
	ErrInvalidParam = New(CodeInvalidParam, "请求参数错误")
	ErrServerBusy   = New(CodeServerBusy, "服务繁忙")
)

// httpStatus 业务码对应的 HTTP 状态码，未列出的按 500 处理
var httpStatus = map[int]int{
	CodeSuccess:        http.StatusOK,
	CodeInvalidParam:   http.StatusBadRequest,
	CodeUnauthorized:   http.StatusUnauthorized,
	CodeNotFound:       http.StatusNotFound,
	CodeUnavailable:    http.StatusServiceUnavailable,
	CodeSchemaMismatch: http.StatusInternalServerError,
}

// CodeError 携带业务码的错误，可包装底层错误
type CodeError struct {
	Code  int    // 业务错误码
	Msg   string // 错误消息
	cause error  // 被包装的底层错误
}

// Error 有底层错误时格式为 "消息: 底层错误"
func (e *CodeError) Error() string {
	if e.cause == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.cause.Error()
}

func (e *CodeError) Unwrap() error {
	return e.cause
}

// Is 业务码相同即匹配，target 须为不包装其他错误的 CodeError（如 ErrInvalidParam）
// errors.Is 会沿整条错误链调用，内层业务码不会被外层遮蔽
func (e *CodeError) Is(target error) bool {
	t, ok := target.(*CodeError)
	return ok && t.cause == nil && t.Code == e.Code
}

// New 创建 CodeError
func New(code int, msg string) *CodeError {
	return Wrap(nil, code, msg)
}

// Newf 创建带格式化消息的 CodeError
func Newf(code int, format string, args ...any) *CodeError {
	return Wrap(nil, code, fmt.Sprintf(format, args...))
}

// Wrap 为底层错误附加业务码和消息
// 用法: errorx.Wrap(err, CodeMQError, "create kafka topics")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{Code: code, Msg: msg, cause: err}
}

// Wrapf 同 Wrap，消息支持格式化
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// GetCode 返回最外层的业务码，非 CodeError 返回 CodeServerBusy
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// HasCode 错误链中任意一层带有指定业务码
func HasCode(err error, code int) bool {
	return errors.Is(err, &CodeError{Code: code})
}

// IsSchemaMismatch 错误链中存在列结构不符错误
func IsSchemaMismatch(err error) bool {
	return HasCode(err, CodeSchemaMismatch)
}

// HTTPStatus 业务码对应的 HTTP 状态码
func HTTPStatus(code int) int {
	if status, ok := httpStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
