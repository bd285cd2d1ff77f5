package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"kama_contact_sync/internal/config"
)

// SecureHeaders 设置安全响应头，sslRedirect 开启时将 HTTP 请求重定向到 HTTPS
// dev 模式下跳过全部检查
func SecureHeaders(conf config.MainConfig) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect:        conf.SSLRedirect,
		SSLHost:            conf.Host + ":" + strconv.Itoa(conf.Port),
		FrameDeny:          true,
		ContentTypeNosniff: true,
		IsDevelopment:      conf.Mode == "dev",
	})

	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			// 重定向或拒绝时响应已写出，终止后续处理
			zap.L().Debug("secure middleware stopped request",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
