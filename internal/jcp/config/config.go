package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Address 是 HTTP 服务监听地址
	// 可以通过环境变量 JCP_ADDRESS 配置
	Address string

	// Region 是 AWS 区域
	// 可以通过环境变量 JCP_REGION 或 AWS_REGION 配置
	// 凭证本身走 SDK 的默认链（环境变量、共享配置、实例角色）
	Region string

	// KeyPairDir 是创建密钥对时私钥文件 (.pem) 的保存目录
	// 可以通过环境变量 JCP_KEYPAIR_DIR 配置
	// 默认：~/.local/share/jcp/keypairs
	KeyPairDir string

	// DefaultImageID 是创建实例时缺省使用的镜像 ID
	DefaultImageID string

	// DefaultInstanceType 是创建实例时缺省使用的实例类型
	DefaultInstanceType string

	// EnableSecurityGroups 控制是否开放安全组相关操作
	// 可以通过环境变量 JCP_ENABLE_SECURITY_GROUPS 配置（false 关闭）
	EnableSecurityGroups bool
}

// fileConfig 对应 JCP_CONFIG 指向的 YAML 配置文件
// 优先级：环境变量 > 配置文件 > 默认值
type fileConfig struct {
	Address              string `yaml:"address"`
	Region               string `yaml:"region"`
	KeyPairDir           string `yaml:"keypair_dir"`
	DefaultImageID       string `yaml:"default_image_id"`
	DefaultInstanceType  string `yaml:"default_instance_type"`
	EnableSecurityGroups *bool  `yaml:"enable_security_groups"`
}

func New() (*Config, error) {
	fc, err := loadFileConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Address:              getAddress(fc),
		Region:               getRegion(fc),
		KeyPairDir:           getKeyPairDir(fc),
		DefaultImageID:       getDefaultImageID(fc),
		DefaultInstanceType:  getDefaultInstanceType(fc),
		EnableSecurityGroups: getEnableSecurityGroups(fc),
	}
	return cfg, nil
}

// loadFileConfig 加载 JCP_CONFIG 指向的 YAML 配置文件
// 未设置 JCP_CONFIG 时返回空配置
func loadFileConfig() (*fileConfig, error) {
	path := os.Getenv("JCP_CONFIG")
	if path == "" {
		return &fileConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	fc := &fileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return fc, nil
}

// getAddress 获取监听地址，优先使用环境变量 JCP_ADDRESS
func getAddress(fc *fileConfig) string {
	if addr := os.Getenv("JCP_ADDRESS"); addr != "" {
		return addr
	}

	if fc.Address != "" {
		return fc.Address
	}

	return "0.0.0.0:7777"
}

// getRegion 获取 AWS 区域，优先使用环境变量
func getRegion(fc *fileConfig) string {
	// 1. 优先使用环境变量 JCP_REGION
	if region := os.Getenv("JCP_REGION"); region != "" {
		return region
	}

	// 2. 尝试使用 AWS_REGION
	if region := os.Getenv("AWS_REGION"); region != "" {
		return region
	}

	// 3. 尝试使用配置文件
	if fc.Region != "" {
		return fc.Region
	}

	// 4. 默认区域
	return "us-east-1"
}

// getKeyPairDir 获取私钥保存目录，优先使用环境变量 JCP_KEYPAIR_DIR
func getKeyPairDir(fc *fileConfig) string {
	if dir := os.Getenv("JCP_KEYPAIR_DIR"); dir != "" {
		return dir
	}

	if fc.KeyPairDir != "" {
		return fc.KeyPairDir
	}

	// 使用用户主目录下的 .local/share/jcp/keypairs
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "jcp", "keypairs")
	}

	// 如果无法获取主目录，使用当前目录下的 keypairs
	return filepath.Join(".", "keypairs")
}

// getDefaultImageID 获取缺省镜像 ID
func getDefaultImageID(fc *fileConfig) string {
	if id := os.Getenv("JCP_DEFAULT_IMAGE_ID"); id != "" {
		return id
	}

	if fc.DefaultImageID != "" {
		return fc.DefaultImageID
	}

	return "ami-02a53b0d62d37a757"
}

// getDefaultInstanceType 获取缺省实例类型
func getDefaultInstanceType(fc *fileConfig) string {
	if t := os.Getenv("JCP_DEFAULT_INSTANCE_TYPE"); t != "" {
		return t
	}

	if fc.DefaultInstanceType != "" {
		return fc.DefaultInstanceType
	}

	return "t2.micro"
}

// getEnableSecurityGroups 获取安全组功能开关，默认开启
func getEnableSecurityGroups(fc *fileConfig) bool {
	if v := os.Getenv("JCP_ENABLE_SECURITY_GROUPS"); v != "" {
		return v != "false" && v != "0"
	}

	if fc.EnableSecurityGroups != nil {
		return *fc.EnableSecurityGroups
	}

	return true
}
