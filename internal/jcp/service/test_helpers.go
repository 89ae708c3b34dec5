package service

import (
	"testing"

	"github.com/jimyag/jcp/pkg/ec2"
)

// TestServices 包含测试所需的所有服务和依赖
type TestServices struct {
	MockEC2              *ec2.MockClient
	InstanceService      *InstanceService
	KeyPairService       *KeyPairService
	SecurityGroupService *SecurityGroupService
	KeyPairDir           string
}

// setupTestServices 为每个测试用例创建独立的测试环境
// 每个测试用例都会获得自己的 mock client 和 service 实例
func setupTestServices(t *testing.T) *TestServices {
	t.Helper()

	tmpDir := t.TempDir()
	mockEC2 := ec2.NewMockClient()

	keyPairService := NewKeyPairService(mockEC2, tmpDir)
	securityGroupService := NewSecurityGroupService(mockEC2)
	instanceService := NewInstanceService(
		mockEC2,
		keyPairService,
		securityGroupService,
		"ami-02a53b0d62d37a757",
		"t2.micro",
		true,
	)

	return &TestServices{
		MockEC2:              mockEC2,
		InstanceService:      instanceService,
		KeyPairService:       keyPairService,
		SecurityGroupService: securityGroupService,
		KeyPairDir:           tmpDir,
	}
}
