// Package userdata 生成实例的 user data
// 启动配置渲染为 cloud-config 文本，经 base64 编码后随 RunInstances 传给云端
package userdata

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// header cloud-config 文件头，cloud-init 依赖它识别格式
const header = "#cloud-config\n"

// Build 将 Config 渲染为 cloud-config 文本
// 明文密码先经 bcrypt 哈希，不会出现在输出中
func Build(cfg *Config) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("config is required")
	}

	cc := &cloudConfig{
		Hostname: cfg.Hostname,
		Timezone: cfg.Timezone,
		Packages: cfg.Packages,
		RunCmd:   cfg.Commands,
	}

	if len(cfg.Users) > 0 {
		// 保留镜像的默认用户
		users := make([]any, 0, len(cfg.Users)+1)
		users = append(users, "default")

		for _, user := range cfg.Users {
			// 处理密码哈希（如果提供了明文密码）
			if user.Password != "" && user.Passwd == "" {
				hashed, err := HashPassword(user.Password)
				if err != nil {
					return "", fmt.Errorf("failed to hash password for user %s: %w", user.Name, err)
				}
				user.Passwd = hashed
				// 设置了密码就允许密码登录
				if user.LockPasswd == nil {
					lockPasswd := false
					user.LockPasswd = &lockPasswd
				}
			}
			users = append(users, user)
		}
		cc.Users = users
	}

	yamlData, err := yaml.Marshal(cc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal user data to YAML: %w", err)
	}

	return header + string(yamlData), nil
}

// Encode 将 user data 内容编码为云端要求的 base64 格式
func Encode(content string) string {
	return base64.StdEncoding.EncodeToString([]byte(content))
}

// HashPassword 使用 bcrypt 加密密码
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
