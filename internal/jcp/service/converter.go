package service

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/jimyag/jcp/internal/jcp/entity"
	"github.com/jimyag/jcp/internal/jcp/metrics"
	"github.com/jimyag/jcp/pkg/apierror"
	"github.com/jimyag/jcp/pkg/userdata"
	"github.com/jinzhu/copier"
)

// providerError 将云端错误分类为 API 错误，并记录错误指标
func providerError(err error) *apierror.Error {
	apiErr := apierror.FromProvider(err)
	if apiErr != nil {
		metrics.ProviderErrorCount.WithLabelValues(apiErr.Code).Inc()
	}
	return apiErr
}

// keyPairInfoToEntity 将云端 KeyPairInfo 转换为 entity.KeyPair
func keyPairInfoToEntity(info *ec2types.KeyPairInfo) (*entity.KeyPair, error) {
	e := &entity.KeyPair{}
	if err := copier.Copy(e, info); err != nil {
		return nil, err
	}
	return e, nil
}

// renderUserData 将启动配置渲染为 user data 内容
// content 明确给出时原样使用，否则渲染 cloud-config
func renderUserData(spec *entity.UserData) (string, error) {
	if spec.Content != "" {
		return spec.Content, nil
	}

	cfg := &userdata.Config{}
	if err := copier.Copy(cfg, spec); err != nil {
		return "", apierror.WrapError(apierror.ErrInternalError, "Failed to render user data", err)
	}
	content, err := userdata.Build(cfg)
	if err != nil {
		return "", apierror.WrapError(apierror.ErrInternalError, "Failed to render user data", err)
	}
	return content, nil
}

// stateChangesToEntity 将云端 InstanceStateChange 列表转换为 entity 列表
func stateChangesToEntity(changes []ec2types.InstanceStateChange) []entity.InstanceStateChange {
	result := make([]entity.InstanceStateChange, 0, len(changes))
	for _, change := range changes {
		e := entity.InstanceStateChange{
			InstanceID: aws.ToString(change.InstanceId), // 字段名不同，手动映射
		}
		// 状态是嵌套结构，手动取状态名称
		if change.PreviousState != nil {
			e.PreviousState = string(change.PreviousState.Name)
		}
		if change.CurrentState != nil {
			e.CurrentState = string(change.CurrentState.Name)
		}
		result = append(result, e)
	}
	return result
}

// rulesToIPPermissions 将 entity 规则转换为云端 IpPermission 格式
func rulesToIPPermissions(rules []entity.SecurityGroupRule) []ec2types.IpPermission {
	permissions := make([]ec2types.IpPermission, 0, len(rules))
	for _, rule := range rules {
		ranges := make([]ec2types.IpRange, 0, len(rule.IPRanges))
		for _, cidr := range rule.IPRanges {
			ranges = append(ranges, ec2types.IpRange{CidrIp: aws.String(cidr)})
		}
		permissions = append(permissions, ec2types.IpPermission{
			IpProtocol: aws.String(rule.IPProtocol),
			FromPort:   aws.Int32(rule.FromPort),
			ToPort:     aws.Int32(rule.ToPort),
			IpRanges:   ranges,
		})
	}
	return permissions
}

// ipPermissionToRule 将云端 IpPermission 转换回 entity 规则
func ipPermissionToRule(permission ec2types.IpPermission) entity.SecurityGroupRule {
	rule := entity.SecurityGroupRule{
		IPProtocol: aws.ToString(permission.IpProtocol),
		FromPort:   aws.ToInt32(permission.FromPort),
		ToPort:     aws.ToInt32(permission.ToPort),
	}
	for _, r := range permission.IpRanges {
		rule.IPRanges = append(rule.IPRanges, aws.ToString(r.CidrIp))
	}
	return rule
}

// ipPermissionExists 检查目标规则是否已经存在于现有规则中
func ipPermissionExists(desired ec2types.IpPermission, existing []ec2types.IpPermission) bool {
	for i := range existing {
		if ipPermissionEqual(desired, existing[i]) {
			return true
		}
	}
	return false
}

// ipPermissionEqual 比较两条规则是否等价
// CIDR 列表按集合比较，与顺序无关
func ipPermissionEqual(a, b ec2types.IpPermission) bool {
	if aws.ToString(a.IpProtocol) != aws.ToString(b.IpProtocol) {
		return false
	}
	if aws.ToInt32(a.FromPort) != aws.ToInt32(b.FromPort) {
		return false
	}
	if aws.ToInt32(a.ToPort) != aws.ToInt32(b.ToPort) {
		return false
	}
	if len(a.IpRanges) != len(b.IpRanges) {
		return false
	}
	cidrs := make(map[string]bool, len(b.IpRanges))
	for _, r := range b.IpRanges {
		cidrs[aws.ToString(r.CidrIp)] = true
	}
	for _, r := range a.IpRanges {
		if !cidrs[aws.ToString(r.CidrIp)] {
			return false
		}
	}
	return true
}
