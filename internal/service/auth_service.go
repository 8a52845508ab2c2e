package service

import (
	"log"
	"time"

	"concessionaria-server/internal/common"
	"concessionaria-server/internal/config"
	"concessionaria-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// 开发模式下未配置管理员密码哈希时使用的默认密码
const devFallbackPassword = "admin"

// Login 校验管理员凭据并签发登录 Token
func (s *Service) Login(username, password string) (string, error) {
	cfg := config.Get()

	if username == "" || password == "" {
		return "", common.NewValidationError("请输入用户名和密码")
	}

	if username != cfg.Admin.Username {
		return "", common.NewUnauthorizedError("用户名或密码错误")
	}

	if cfg.Admin.PasswordHash == "" {
		// release 模式在启动时已拦截空哈希，这里只可能是开发模式
		log.Println("⚠️ [开发模式警告] 未设置管理员密码哈希，使用默认开发密码")
		if password != devFallbackPassword {
			return "", common.NewUnauthorizedError("用户名或密码错误")
		}
	} else if err := bcrypt.CompareHashAndPassword([]byte(cfg.Admin.PasswordHash), []byte(password)); err != nil {
		return "", common.NewUnauthorizedError("用户名或密码错误")
	}

	duration := time.Duration(cfg.JWT.ExpirationHours) * time.Hour
	if duration <= 0 {
		duration = 24 * time.Hour
	}

	token, err := utils.GenerateLoginToken(username, duration)
	if err != nil {
		log.Printf("Generate login token error: %v\n", err)
		return "", common.NewInternalError("登录失败，请稍后重试")
	}
	return token, nil
}
