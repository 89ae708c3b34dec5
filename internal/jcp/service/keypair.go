package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2lib "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/jimyag/jcp/internal/jcp/entity"
	"github.com/jimyag/jcp/pkg/apierror"
	"github.com/jimyag/jcp/pkg/ec2"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/ssh"
)

// KeyPairService 密钥对服务
type KeyPairService struct {
	client     ec2.EC2Client
	keyPairDir string
}

// NewKeyPairService 创建密钥对服务
// keyPairDir 是新建密钥对时私钥 (.pem) 的保存目录
func NewKeyPairService(
	client ec2.EC2Client,
	keyPairDir string,
) *KeyPairService {
	return &KeyPairService{
		client:     client,
		keyPairDir: keyPairDir,
	}
}

// CreateKeyPair 创建密钥对
func (s *KeyPairService) CreateKeyPair(ctx context.Context, req *entity.CreateKeyPairRequest) (*entity.CreateKeyPairResponse, error) {
	keyPair, err := s.EnsureKeyPair(ctx, req.KeyName)
	if err != nil {
		return nil, err
	}
	return &entity.CreateKeyPairResponse{KeyPair: keyPair}, nil
}

// EnsureKeyPair 确保密钥对存在
// 同名密钥对已存在时直接复用；不存在时创建，并把私钥保存为只读的 .pem 文件
func (s *KeyPairService) EnsureKeyPair(ctx context.Context, keyName string) (*entity.KeyPair, error) {
	logger := zerolog.Ctx(ctx)

	// 查询已有的密钥对
	output, err := s.client.DescribeKeyPairs(ctx, &ec2lib.DescribeKeyPairsInput{})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to describe key pairs")
		return nil, providerError(err)
	}

	for i := range output.KeyPairs {
		if aws.ToString(output.KeyPairs[i].KeyName) == keyName {
			logger.Info().Str("key_name", keyName).Msg("Key pair already exists, reusing it")
			keyPair, err := keyPairInfoToEntity(&output.KeyPairs[i])
			if err != nil {
				logger.Error().Err(err).Str("key_name", keyName).Msg("Failed to convert key pair")
				return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to convert key pair", err)
			}
			keyPair.Reused = true
			return keyPair, nil
		}
	}

	// 不存在则创建新的密钥对
	created, err := s.client.CreateKeyPair(ctx, &ec2lib.CreateKeyPairInput{
		KeyName: aws.String(keyName),
	})
	if err != nil {
		logger.Error().Err(err).Str("key_name", keyName).Msg("Failed to create key pair")
		return nil, providerError(err)
	}

	// 保存私钥，云端不保存私钥内容，只在创建时返回一次
	savedPath, err := s.savePrivateKey(keyName, aws.ToString(created.KeyMaterial))
	if err != nil {
		logger.Error().Err(err).Str("key_name", keyName).Msg("Failed to save private key")
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to save private key", err)
	}

	logger.Info().
		Str("key_name", keyName).
		Str("saved_path", savedPath).
		Msg("Key pair created successfully")

	return &entity.KeyPair{
		KeyName:        aws.ToString(created.KeyName),
		KeyFingerprint: aws.ToString(created.KeyFingerprint),
		SavedPath:      savedPath,
	}, nil
}

// ImportKeyPair 导入密钥对
// 公钥缺省时先在本地生成：公钥导入云端，私钥保存为只读的 .pem 文件
func (s *KeyPairService) ImportKeyPair(ctx context.Context, req *entity.ImportKeyPairRequest) (*entity.ImportKeyPairResponse, error) {
	logger := zerolog.Ctx(ctx)

	publicKeyStr := req.PublicKey
	privateKeyStr := ""
	if publicKeyStr == "" {
		var err error
		publicKeyStr, privateKeyStr, err = generateKeyPair(req.Algorithm, req.KeySize)
		if err != nil {
			logger.Error().Err(err).Str("key_name", req.KeyName).Msg("Failed to generate key pair")
			return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to generate key pair", err)
		}
	}

	// 解析并规范化公钥，无效的公钥不会发给云端
	publicKey, _, _, rest, err := ssh.ParseAuthorizedKey([]byte(publicKeyStr))
	if err != nil {
		logger.Error().Err(err).Str("key_name", req.KeyName).Msg("Failed to parse public key")
		return nil, apierror.WrapError(apierror.ErrInvalidParameterValue,
			fmt.Sprintf("invalid public key format: %v", err), err)
	}
	if len(rest) > 0 {
		return nil, apierror.WrapError(apierror.ErrInvalidParameterValue,
			"public key contains extra data", nil)
	}
	publicKeyStr = strings.TrimSpace(string(ssh.MarshalAuthorizedKey(publicKey)))

	output, err := s.client.ImportKeyPair(ctx, &ec2lib.ImportKeyPairInput{
		KeyName:           aws.String(req.KeyName),
		PublicKeyMaterial: []byte(publicKeyStr),
	})
	if err != nil {
		logger.Error().Err(err).Str("key_name", req.KeyName).Msg("Failed to import key pair")
		return nil, providerError(err)
	}

	keyPair := &entity.KeyPair{
		KeyName:        aws.ToString(output.KeyName),
		KeyFingerprint: aws.ToString(output.KeyFingerprint),
		PublicKey:      publicKeyStr,
		Algorithm:      determineAlgorithm(publicKey.Type()),
	}

	// 本地生成的私钥只有这一份，云端不保存
	if privateKeyStr != "" {
		savedPath, err := s.savePrivateKey(req.KeyName, privateKeyStr)
		if err != nil {
			logger.Error().Err(err).Str("key_name", req.KeyName).Msg("Failed to save private key")
			return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to save private key", err)
		}
		keyPair.SavedPath = savedPath
	}

	logger.Info().
		Str("key_name", keyPair.KeyName).
		Str("algorithm", keyPair.Algorithm).
		Msg("Key pair imported successfully")

	return &entity.ImportKeyPairResponse{KeyPair: keyPair}, nil
}

// savePrivateKey 将私钥写入 keyPairDir 下的 .pem 文件
// 文件权限设置为 0400，目录不存在时自动创建
func (s *KeyPairService) savePrivateKey(keyName, keyMaterial string) (string, error) {
	if err := os.MkdirAll(s.keyPairDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create keypair dir: %w", err)
	}

	path := filepath.Join(s.keyPairDir, keyName+".pem")
	if err := os.WriteFile(path, []byte(keyMaterial), 0o400); err != nil {
		return "", fmt.Errorf("failed to write private key: %w", err)
	}
	return path, nil
}

// generateKeyPair 在本地生成密钥对
// 返回 OpenSSH 格式公钥和 PEM 格式私钥
func generateKeyPair(algorithm string, keySize int) (publicKeyStr, privateKeyStr string, err error) {
	switch algorithm {
	case "", "ed25519":
		return generateED25519KeyPair()
	case "rsa":
		if keySize == 0 {
			keySize = 2048
		}
		return generateRSAKeyPair(keySize)
	default:
		return "", "", fmt.Errorf("unsupported algorithm: %s", algorithm)
	}
}

// generateED25519KeyPair 生成 ED25519 密钥对
func generateED25519KeyPair() (publicKeyStr, privateKeyStr string, err error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate ed25519 key: %w", err)
	}

	// 转换为 SSH 公钥格式
	sshPublicKey, err := ssh.NewPublicKey(publicKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to create SSH public key: %w", err)
	}
	publicKeyStr = strings.TrimSpace(string(ssh.MarshalAuthorizedKey(sshPublicKey)))

	// ED25519 私钥是 64 字节（32 字节种子 + 32 字节公钥），使用 PEM 保存
	privateKeyBytes := make([]byte, len(privateKey))
	copy(privateKeyBytes, privateKey)
	block := &pem.Block{
		Type:  "OPENSSH PRIVATE KEY",
		Bytes: privateKeyBytes,
	}
	privateKeyStr = string(pem.EncodeToMemory(block))

	return publicKeyStr, privateKeyStr, nil
}

// generateRSAKeyPair 生成 RSA 密钥对
func generateRSAKeyPair(keySize int) (publicKeyStr, privateKeyStr string, err error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate RSA key: %w", err)
	}

	// 转换为 SSH 公钥格式
	sshPublicKey, err := ssh.NewPublicKey(&privateKey.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to create SSH public key: %w", err)
	}
	publicKeyStr = strings.TrimSpace(string(ssh.MarshalAuthorizedKey(sshPublicKey)))

	// 私钥使用 PKCS#1 格式
	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}
	privateKeyStr = string(pem.EncodeToMemory(block))

	return publicKeyStr, privateKeyStr, nil
}

// determineAlgorithm 根据 SSH 密钥类型确定算法名称
func determineAlgorithm(keyType string) string {
	switch keyType {
	case ssh.KeyAlgoRSA, ssh.KeyAlgoRSASHA256, ssh.KeyAlgoRSASHA512:
		return "rsa"
	case ssh.KeyAlgoED25519:
		return "ed25519"
	default:
		return strings.ToLower(keyType)
	}
}
