package middleware

import (
	"net/http"
	"strings"

	"kama_contact_sync/pkg/constants"
	"kama_contact_sync/pkg/errorx"
	"kama_contact_sync/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// JWTAuth JWT 认证中间件
// 验证 Access Token 并将客户端 ID 存入上下文
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从 Header 获取 Token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "缺少访问令牌",
			})
			return
		}

		// 2. 解析 Bearer Token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "Token 格式错误，请使用 Bearer Token",
			})
			return
		}

		// 3. 验证 Token
		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "Token 已过期或无效",
			})
			return
		}

		// 4. 将客户端 ID 存入上下文，供后续 Handler 使用
		c.Set(constants.CTX_CLIENT_ID_KEY, claims.ClientID)
		c.Next()
	}
}

// ClientID 读取 JWTAuth 写入的客户端 ID
func ClientID(c *gin.Context) string {
	return c.GetString(constants.CTX_CLIENT_ID_KEY)
}
