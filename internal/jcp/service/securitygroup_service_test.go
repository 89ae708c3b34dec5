package service

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2lib "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	smithy "github.com/aws/smithy-go"
	"github.com/jimyag/jcp/internal/jcp/entity"
	"github.com/jimyag/jcp/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sshPermission 构造一条 tcp/22 的入站规则
func sshPermission() ec2types.IpPermission {
	return ec2types.IpPermission{
		IpProtocol: aws.String("tcp"),
		FromPort:   aws.Int32(22),
		ToPort:     aws.Int32(22),
		IpRanges:   []ec2types.IpRange{{CidrIp: aws.String("0.0.0.0/0")}},
	}
}

// instanceWithGroups 构造挂了指定安全组的实例查询结果
func instanceWithGroups(instanceID string, groupIDs ...string) *ec2lib.DescribeInstancesOutput {
	instance := ec2types.Instance{InstanceId: aws.String(instanceID)}
	for _, id := range groupIDs {
		instance.SecurityGroups = append(instance.SecurityGroups, ec2types.GroupIdentifier{
			GroupId: aws.String(id),
		})
	}
	return &ec2lib.DescribeInstancesOutput{
		Reservations: []ec2types.Reservation{{Instances: []ec2types.Instance{instance}}},
	}
}

func TestSecurityGroupService_CreateSecurityGroup(t *testing.T) {
	t.Parallel()

	sshRule := entity.SecurityGroupRule{
		IPProtocol: "tcp",
		FromPort:   22,
		ToPort:     22,
		IPRanges:   []string{"0.0.0.0/0"},
	}
	httpRule := entity.SecurityGroupRule{
		IPProtocol: "tcp",
		FromPort:   80,
		ToPort:     80,
		IPRanges:   []string{"0.0.0.0/0"},
	}

	describeAll := func(params *ec2lib.DescribeSecurityGroupsInput) bool {
		return len(params.GroupIds) == 0
	}
	describeByID := func(groupID string) func(*ec2lib.DescribeSecurityGroupsInput) bool {
		return func(params *ec2lib.DescribeSecurityGroupsInput) bool {
			return len(params.GroupIds) == 1 && params.GroupIds[0] == groupID
		}
	}

	testcases := []struct {
		name        string
		req         *entity.CreateSecurityGroupRequest
		mockSetup   func(*TestServices)
		expectError bool
		errorCode   string
		errorStatus int
		validate    func(*testing.T, *TestServices, *entity.CreateSecurityGroupResponse)
	}{
		{
			name: "create new group with rules",
			req: &entity.CreateSecurityGroupRequest{
				GroupName: "web",
				Rules:     []entity.SecurityGroupRule{sshRule},
			},
			mockSetup: func(s *TestServices) {
				s.MockEC2.On("DescribeSecurityGroups", mock.Anything, mock.MatchedBy(describeAll)).
					Return(&ec2lib.DescribeSecurityGroupsOutput{}, nil)
				s.MockEC2.On("CreateSecurityGroup", mock.Anything, mock.MatchedBy(func(params *ec2lib.CreateSecurityGroupInput) bool {
					return aws.ToString(params.GroupName) == "web" &&
						aws.ToString(params.Description) == "web"
				})).Return(&ec2lib.CreateSecurityGroupOutput{GroupId: aws.String("sg-new")}, nil)
				s.MockEC2.On("DescribeSecurityGroups", mock.Anything, mock.MatchedBy(describeByID("sg-new"))).
					Return(&ec2lib.DescribeSecurityGroupsOutput{
						SecurityGroups: []ec2types.SecurityGroup{
							{GroupId: aws.String("sg-new"), GroupName: aws.String("web")},
						},
					}, nil)
				s.MockEC2.On("AuthorizeSecurityGroupIngress", mock.Anything, mock.MatchedBy(func(params *ec2lib.AuthorizeSecurityGroupIngressInput) bool {
					return aws.ToString(params.GroupId) == "sg-new" && len(params.IpPermissions) == 1
				})).Return(&ec2lib.AuthorizeSecurityGroupIngressOutput{}, nil)
			},
			validate: func(t *testing.T, _ *TestServices, resp *entity.CreateSecurityGroupResponse) {
				assert.Equal(t, "sg-new", resp.GroupID)
				assert.Equal(t, "web", resp.GroupName)
				assert.False(t, resp.Reused)
				require.Len(t, resp.NewRules, 1)
				assert.Equal(t, int32(22), resp.NewRules[0].FromPort)
			},
		},
		{
			name: "reuse existing group",
			req:  &entity.CreateSecurityGroupRequest{GroupName: "web"},
			mockSetup: func(s *TestServices) {
				s.MockEC2.On("DescribeSecurityGroups", mock.Anything, mock.MatchedBy(describeAll)).
					Return(&ec2lib.DescribeSecurityGroupsOutput{
						SecurityGroups: []ec2types.SecurityGroup{
							{GroupId: aws.String("sg-123"), GroupName: aws.String("web")},
						},
					}, nil)
			},
			validate: func(t *testing.T, s *TestServices, resp *entity.CreateSecurityGroupResponse) {
				assert.Equal(t, "sg-123", resp.GroupID)
				assert.True(t, resp.Reused)
				assert.Empty(t, resp.NewRules)
				s.MockEC2.AssertNotCalled(t, "CreateSecurityGroup", mock.Anything, mock.Anything)
				s.MockEC2.AssertNotCalled(t, "AuthorizeSecurityGroupIngress", mock.Anything, mock.Anything)
			},
		},
		{
			name: "all rules already present",
			req: &entity.CreateSecurityGroupRequest{
				GroupName: "web",
				Rules:     []entity.SecurityGroupRule{sshRule},
			},
			mockSetup: func(s *TestServices) {
				s.MockEC2.On("DescribeSecurityGroups", mock.Anything, mock.MatchedBy(describeAll)).
					Return(&ec2lib.DescribeSecurityGroupsOutput{
						SecurityGroups: []ec2types.SecurityGroup{
							{GroupId: aws.String("sg-123"), GroupName: aws.String("web")},
						},
					}, nil)
				s.MockEC2.On("DescribeSecurityGroups", mock.Anything, mock.MatchedBy(describeByID("sg-123"))).
					Return(&ec2lib.DescribeSecurityGroupsOutput{
						SecurityGroups: []ec2types.SecurityGroup{
							{
								GroupId:       aws.String("sg-123"),
								GroupName:     aws.String("web"),
								IpPermissions: []ec2types.IpPermission{sshPermission()},
							},
						},
					}, nil)
			},
			validate: func(t *testing.T, s *TestServices, resp *entity.CreateSecurityGroupResponse) {
				assert.True(t, resp.Reused)
				assert.Empty(t, resp.NewRules)
				s.MockEC2.AssertNotCalled(t, "AuthorizeSecurityGroupIngress", mock.Anything, mock.Anything)
			},
		},
		{
			name: "only missing rules are authorized",
			req: &entity.CreateSecurityGroupRequest{
				GroupName: "web",
				Rules:     []entity.SecurityGroupRule{sshRule, httpRule},
			},
			mockSetup: func(s *TestServices) {
				s.MockEC2.On("DescribeSecurityGroups", mock.Anything, mock.MatchedBy(describeAll)).
					Return(&ec2lib.DescribeSecurityGroupsOutput{
						SecurityGroups: []ec2types.SecurityGroup{
							{GroupId: aws.String("sg-123"), GroupName: aws.String("web")},
						},
					}, nil)
				s.MockEC2.On("DescribeSecurityGroups", mock.Anything, mock.MatchedBy(describeByID("sg-123"))).
					Return(&ec2lib.DescribeSecurityGroupsOutput{
						SecurityGroups: []ec2types.SecurityGroup{
							{
								GroupId:       aws.String("sg-123"),
								GroupName:     aws.String("web"),
								IpPermissions: []ec2types.IpPermission{sshPermission()},
							},
						},
					}, nil)
				s.MockEC2.On("AuthorizeSecurityGroupIngress", mock.Anything, mock.MatchedBy(func(params *ec2lib.AuthorizeSecurityGroupIngressInput) bool {
					return len(params.IpPermissions) == 1 &&
						aws.ToInt32(params.IpPermissions[0].FromPort) == 80
				})).Return(&ec2lib.AuthorizeSecurityGroupIngressOutput{}, nil)
			},
			validate: func(t *testing.T, _ *TestServices, resp *entity.CreateSecurityGroupResponse) {
				require.Len(t, resp.NewRules, 1)
				assert.Equal(t, int32(80), resp.NewRules[0].FromPort)
			},
		},
		{
			name: "group disappears before rules are added",
			req: &entity.CreateSecurityGroupRequest{
				GroupName: "web",
				Rules:     []entity.SecurityGroupRule{sshRule},
			},
			mockSetup: func(s *TestServices) {
				s.MockEC2.On("DescribeSecurityGroups", mock.Anything, mock.MatchedBy(describeAll)).
					Return(&ec2lib.DescribeSecurityGroupsOutput{
						SecurityGroups: []ec2types.SecurityGroup{
							{GroupId: aws.String("sg-123"), GroupName: aws.String("web")},
						},
					}, nil)
				s.MockEC2.On("DescribeSecurityGroups", mock.Anything, mock.MatchedBy(describeByID("sg-123"))).
					Return(&ec2lib.DescribeSecurityGroupsOutput{}, nil)
			},
			expectError: true,
			errorCode:   "InvalidGroup.NotFound",
			errorStatus: 404,
		},
		{
			name: "provider rejects the creation",
			req:  &entity.CreateSecurityGroupRequest{GroupName: "web"},
			mockSetup: func(s *TestServices) {
				s.MockEC2.On("DescribeSecurityGroups", mock.Anything, mock.MatchedBy(describeAll)).
					Return(&ec2lib.DescribeSecurityGroupsOutput{}, nil)
				s.MockEC2.On("CreateSecurityGroup", mock.Anything, mock.Anything).
					Return(nil, &smithy.GenericAPIError{
						Code:    "SecurityGroupLimitExceeded",
						Message: "You have reached the limit of security groups",
						Fault:   smithy.FaultClient,
					})
			},
			expectError: true,
			errorCode:   "SecurityGroupLimitExceeded",
			errorStatus: 400,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			services := setupTestServices(t)
			tc.mockSetup(services)
			ctx := context.Background()

			resp, err := services.SecurityGroupService.CreateSecurityGroup(ctx, tc.req)

			if tc.expectError {
				require.Error(t, err)
				var apiErr *apierror.Error
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tc.errorCode, apiErr.Code)
				assert.Equal(t, tc.errorStatus, apiErr.HTTPStatus)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			if tc.validate != nil {
				tc.validate(t, services, resp)
			}
			services.MockEC2.AssertExpectations(t)
		})
	}
}

func TestSecurityGroupService_AttachSecurityGroup(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name        string
		req         *entity.AttachSecurityGroupRequest
		mockSetup   func(*TestServices)
		expectError bool
		errorCode   string
		errorStatus int
		validate    func(*testing.T, *TestServices, *entity.AttachSecurityGroupResponse)
	}{
		{
			name: "attach group to instance",
			req:  &entity.AttachSecurityGroupRequest{InstanceID: "i-abc123", GroupID: "sg-new"},
			mockSetup: func(s *TestServices) {
				s.MockEC2.On("DescribeInstances", mock.Anything, mock.MatchedBy(func(params *ec2lib.DescribeInstancesInput) bool {
					return len(params.InstanceIds) == 1 && params.InstanceIds[0] == "i-abc123"
				})).Return(instanceWithGroups("i-abc123", "sg-aaa"), nil)
				s.MockEC2.On("ModifyInstanceAttribute", mock.Anything, mock.MatchedBy(func(params *ec2lib.ModifyInstanceAttributeInput) bool {
					return aws.ToString(params.InstanceId) == "i-abc123" &&
						len(params.Groups) == 2 &&
						params.Groups[0] == "sg-aaa" &&
						params.Groups[1] == "sg-new"
				})).Return(&ec2lib.ModifyInstanceAttributeOutput{}, nil)
			},
			validate: func(t *testing.T, _ *TestServices, resp *entity.AttachSecurityGroupResponse) {
				assert.Equal(t, "i-abc123", resp.InstanceID)
				assert.Equal(t, []string{"sg-aaa", "sg-new"}, resp.GroupIDs)
			},
		},
		{
			name: "already attached is a no-op",
			req:  &entity.AttachSecurityGroupRequest{InstanceID: "i-abc123", GroupID: "sg-aaa"},
			mockSetup: func(s *TestServices) {
				s.MockEC2.On("DescribeInstances", mock.Anything, mock.Anything).
					Return(instanceWithGroups("i-abc123", "sg-aaa", "sg-bbb"), nil)
			},
			validate: func(t *testing.T, s *TestServices, resp *entity.AttachSecurityGroupResponse) {
				assert.Equal(t, []string{"sg-aaa", "sg-bbb"}, resp.GroupIDs)
				s.MockEC2.AssertNotCalled(t, "ModifyInstanceAttribute", mock.Anything, mock.Anything)
			},
		},
		{
			name: "instance not found",
			req:  &entity.AttachSecurityGroupRequest{InstanceID: "i-doesnotexist", GroupID: "sg-new"},
			mockSetup: func(s *TestServices) {
				s.MockEC2.On("DescribeInstances", mock.Anything, mock.Anything).
					Return(&ec2lib.DescribeInstancesOutput{}, nil)
			},
			expectError: true,
			errorCode:   "InvalidInstanceID.NotFound",
			errorStatus: 404,
		},
		{
			name: "limit of five groups per instance",
			req:  &entity.AttachSecurityGroupRequest{InstanceID: "i-abc123", GroupID: "sg-new"},
			mockSetup: func(s *TestServices) {
				s.MockEC2.On("DescribeInstances", mock.Anything, mock.Anything).
					Return(instanceWithGroups("i-abc123", "sg-1", "sg-2", "sg-3", "sg-4", "sg-5"), nil)
			},
			expectError: true,
			errorCode:   "SecurityGroupsPerInstanceLimitExceeded",
			errorStatus: 400,
			validate: func(t *testing.T, s *TestServices, _ *entity.AttachSecurityGroupResponse) {
				s.MockEC2.AssertNotCalled(t, "ModifyInstanceAttribute", mock.Anything, mock.Anything)
			},
		},
		{
			name: "provider rejects the modification",
			req:  &entity.AttachSecurityGroupRequest{InstanceID: "i-abc123", GroupID: "sg-new"},
			mockSetup: func(s *TestServices) {
				s.MockEC2.On("DescribeInstances", mock.Anything, mock.Anything).
					Return(instanceWithGroups("i-abc123"), nil)
				s.MockEC2.On("ModifyInstanceAttribute", mock.Anything, mock.Anything).
					Return(nil, &smithy.GenericAPIError{
						Code:    "UnauthorizedOperation",
						Message: "You are not authorized to perform this operation",
						Fault:   smithy.FaultClient,
					})
			},
			expectError: true,
			errorCode:   "UnauthorizedOperation",
			errorStatus: 403,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			services := setupTestServices(t)
			tc.mockSetup(services)
			ctx := context.Background()

			resp, err := services.SecurityGroupService.AttachSecurityGroup(ctx, tc.req)

			if tc.expectError {
				require.Error(t, err)
				var apiErr *apierror.Error
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tc.errorCode, apiErr.Code)
				assert.Equal(t, tc.errorStatus, apiErr.HTTPStatus)
				assert.Nil(t, resp)
				if tc.validate != nil {
					tc.validate(t, services, resp)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			if tc.validate != nil {
				tc.validate(t, services, resp)
			}
			services.MockEC2.AssertExpectations(t)
		})
	}
}
