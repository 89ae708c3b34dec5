// Package entity 定义业务实体
package entity

import (
	"fmt"

	"github.com/jimyag/jcp/pkg/apierror"
)

// KeyPair 密钥对信息
type KeyPair struct {
	KeyName        string `json:"key_name"`             // 密钥对名称
	KeyFingerprint string `json:"key_fingerprint"`      // 公钥指纹
	PublicKey      string `json:"public_key,omitempty"` // OpenSSH 格式公钥（仅导入时返回）
	Algorithm      string `json:"algorithm,omitempty"`  // 算法：rsa, ed25519（仅导入时返回）
	SavedPath      string `json:"saved_path,omitempty"` // 私钥保存路径（仅本地生成时返回）
	Reused         bool   `json:"reused"`               // 是否复用了云端已存在的密钥对
	// 注意：私钥只在创建时返回一次，云端不保存私钥内容
}

// CreateKeyPairRequest 创建密钥对请求
// 同名密钥对已存在时直接复用，不会重复创建
type CreateKeyPairRequest struct {
	KeyName string `json:"key_name" binding:"required"` // 密钥对名称
}

// IsValid 校验请求参数
func (req *CreateKeyPairRequest) IsValid() error {
	if req.KeyName == "" {
		return apierror.WrapError(apierror.ErrMissingParameter, "key_name is required", nil)
	}
	if len(req.KeyName) > 255 {
		return apierror.WrapError(apierror.ErrInvalidParameterValue,
			"key_name must be at most 255 characters", nil)
	}
	return nil
}

// CreateKeyPairResponse 创建密钥对响应
type CreateKeyPairResponse struct {
	KeyPair *KeyPair `json:"keypair"`
}

// ImportKeyPairRequest 导入密钥对请求
// public_key 给出时导入已有公钥；缺省时在本地生成密钥对，
// 公钥导入云端，私钥保存为本地 .pem 文件
type ImportKeyPairRequest struct {
	KeyName   string `json:"key_name" binding:"required"` // 密钥对名称
	PublicKey string `json:"public_key,omitempty"`        // OpenSSH 格式公钥
	Algorithm string `json:"algorithm,omitempty"`         // 本地生成算法：rsa, ed25519（默认：ed25519）
	KeySize   int    `json:"key_size,omitempty"`          // RSA 密钥长度（默认：2048，仅 RSA 使用）
}

// IsValid 校验请求参数
func (req *ImportKeyPairRequest) IsValid() error {
	if req.KeyName == "" {
		return apierror.WrapError(apierror.ErrMissingParameter, "key_name is required", nil)
	}
	if len(req.KeyName) > 255 {
		return apierror.WrapError(apierror.ErrInvalidParameterValue,
			"key_name must be at most 255 characters", nil)
	}
	if req.PublicKey != "" && (req.Algorithm != "" || req.KeySize != 0) {
		return apierror.WrapError(apierror.ErrInvalidParameterCombination,
			"algorithm and key_size may not be combined with public_key", nil)
	}
	switch req.Algorithm {
	case "", "ed25519":
		if req.KeySize != 0 {
			return apierror.WrapError(apierror.ErrInvalidParameterCombination,
				"key_size only applies to the rsa algorithm", nil)
		}
	case "rsa":
		if req.KeySize != 0 && req.KeySize < 2048 {
			return apierror.WrapError(apierror.ErrInvalidParameterValue,
				"RSA key size must be at least 2048 bits", nil)
		}
	default:
		return apierror.WrapError(apierror.ErrInvalidParameterValue,
			fmt.Sprintf("unsupported algorithm: %s, supported: rsa, ed25519", req.Algorithm), nil)
	}
	return nil
}

// ImportKeyPairResponse 导入密钥对响应
type ImportKeyPairResponse struct {
	KeyPair *KeyPair `json:"keypair"`
}
