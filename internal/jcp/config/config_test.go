package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv 清空所有会影响配置的环境变量
// t.Setenv 会在测试结束后恢复原值
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"JCP_CONFIG",
		"JCP_ADDRESS",
		"JCP_REGION",
		"AWS_REGION",
		"JCP_KEYPAIR_DIR",
		"JCP_DEFAULT_IMAGE_ID",
		"JCP_DEFAULT_INSTANCE_TYPE",
		"JCP_ENABLE_SECURITY_GROUPS",
	} {
		t.Setenv(key, "")
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:7777", cfg.Address)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "ami-02a53b0d62d37a757", cfg.DefaultImageID)
	assert.Equal(t, "t2.micro", cfg.DefaultInstanceType)
	assert.True(t, cfg.EnableSecurityGroups)
	assert.Equal(t, "keypairs", filepath.Base(cfg.KeyPairDir))
}

func TestNew_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JCP_ADDRESS", "127.0.0.1:8080")
	t.Setenv("JCP_REGION", "eu-west-1")
	t.Setenv("JCP_KEYPAIR_DIR", "/tmp/jcp-keys")
	t.Setenv("JCP_DEFAULT_IMAGE_ID", "ami-deadbeef")
	t.Setenv("JCP_DEFAULT_INSTANCE_TYPE", "t3.micro")
	t.Setenv("JCP_ENABLE_SECURITY_GROUPS", "false")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Address)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "/tmp/jcp-keys", cfg.KeyPairDir)
	assert.Equal(t, "ami-deadbeef", cfg.DefaultImageID)
	assert.Equal(t, "t3.micro", cfg.DefaultInstanceType)
	assert.False(t, cfg.EnableSecurityGroups)
}

func TestNew_RegionFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_REGION", "ap-northeast-1")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "ap-northeast-1", cfg.Region)

	// JCP_REGION 优先于 AWS_REGION
	t.Setenv("JCP_REGION", "us-west-2")
	cfg, err = New()
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

func TestNew_ConfigFile(t *testing.T) {
	clearEnv(t)

	content := `
address: 127.0.0.1:9090
region: eu-central-1
keypair_dir: /var/lib/jcp/keys
default_image_id: ami-from-file
default_instance_type: m5.large
enable_security_groups: false
`
	path := filepath.Join(t.TempDir(), "jcp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("JCP_CONFIG", path)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Address)
	assert.Equal(t, "eu-central-1", cfg.Region)
	assert.Equal(t, "/var/lib/jcp/keys", cfg.KeyPairDir)
	assert.Equal(t, "ami-from-file", cfg.DefaultImageID)
	assert.Equal(t, "m5.large", cfg.DefaultInstanceType)
	assert.False(t, cfg.EnableSecurityGroups)
}

func TestNew_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)

	content := `
address: 127.0.0.1:9090
region: eu-central-1
`
	path := filepath.Join(t.TempDir(), "jcp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("JCP_CONFIG", path)
	t.Setenv("JCP_ADDRESS", "0.0.0.0:8888")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8888", cfg.Address)
	// 环境变量没有覆盖的字段仍然来自配置文件
	assert.Equal(t, "eu-central-1", cfg.Region)
}

func TestNew_ConfigFileErrors(t *testing.T) {
	clearEnv(t)

	t.Run("file not found", func(t *testing.T) {
		t.Setenv("JCP_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := New()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("address: [unclosed"), 0o600))
		t.Setenv("JCP_CONFIG", path)
		_, err := New()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}
