package apierror

// AWS EC2 客户端错误
// https://docs.aws.amazon.com/zh_cn/AWSEC2/latest/APIReference/errors-overview.html#api-error-codes-table-client
var (
	// ErrAuthFailure 提供的凭证无法验证
	// 您可能没有权限执行该请求，或者账户可能欠费
	ErrAuthFailure = &Error{
		Code:       "AuthFailure",
		Message:    "The provided credentials could not be validated. You may not be authorized to carry out the request; for example, associating an Elastic IP address that is not yours, or trying to use an AMI for which you do not have permissions. Ensure that your account is authorized to use the Amazon EC2 service, that your credit card details are correct, and that you are using the correct credentials.",
		HTTPStatus: 403,
	}

	// ErrUnauthorizedOperation 您没有权限执行此操作
	// 检查您收到的 IAM 策略，并确认它们允许您执行所需的操作
	ErrUnauthorizedOperation = &Error{
		Code:       "UnauthorizedOperation",
		Message:    "You are not authorized to perform this operation. Check your IAM policies, and ensure that you are using the correct credentials.",
		HTTPStatus: 403,
	}

	// ErrOptInRequired 您没有使用该服务的权限
	ErrOptInRequired = &Error{
		Code:       "OptInRequired",
		Message:    "You are not authorized to use the requested service. Confirm that you have signed up for the service offering.",
		HTTPStatus: 403,
	}

	// ErrInvalidParameterValue 请求中的参数值无效
	ErrInvalidParameterValue = &Error{
		Code:       "InvalidParameterValue",
		Message:    "A value specified in a parameter is not valid, is unsupported, or cannot be used. Ensure that you specify a resource by using its full ID.",
		HTTPStatus: 400,
	}

	// ErrInvalidParameterCombination 指定了不能同时使用的参数组合
	ErrInvalidParameterCombination = &Error{
		Code:       "InvalidParameterCombination",
		Message:    "Indicates an incorrect combination of parameters, or a missing parameter.",
		HTTPStatus: 400,
	}

	// ErrMissingParameter 请求缺少必需的参数
	ErrMissingParameter = &Error{
		Code:       "MissingParameter",
		Message:    "The request is missing a required parameter. Ensure that you have supplied all the required parameters for the request.",
		HTTPStatus: 400,
	}

	// ErrValidationError 输入未能满足服务约束
	ErrValidationError = &Error{
		Code:       "ValidationError",
		Message:    "The input fails to satisfy the constraints specified by an AWS service.",
		HTTPStatus: 400,
	}

	// ErrInvalidAMIIDNotFound 指定的 AMI 不存在
	// 检查 AMI ID 是否正确，以及是否在您调用的 AWS 区域中
	ErrInvalidAMIIDNotFound = &Error{
		Code:       "InvalidAMIID.NotFound",
		Message:    "The specified AMI does not exist. Check the AMI ID, and ensure that you specify the AWS Region in which the AMI is located, if it's not in the default Region.",
		HTTPStatus: 404,
	}

	// ErrInvalidAMIIDMalformed 指定的 AMI ID 格式不正确
	ErrInvalidAMIIDMalformed = &Error{
		Code:       "InvalidAMIID.Malformed",
		Message:    "The specified AMI ID is malformed. Ensure that you provide the full AMI ID, in the form ami-xxxxxxxxxxxxxxxxx.",
		HTTPStatus: 400,
	}

	// ErrInvalidInstanceIDNotFound 指定的实例不存在
	// 检查实例 ID 是否正确，以及是否在您调用的 AWS 区域中
	ErrInvalidInstanceIDNotFound = &Error{
		Code:       "InvalidInstanceID.NotFound",
		Message:    "The specified instance does not exist. Ensure that you have indicated the Region in which the instance is located, if it's not in the default Region.",
		HTTPStatus: 404,
	}

	// ErrInvalidInstanceIDMalformed 指定的实例 ID 格式不正确
	ErrInvalidInstanceIDMalformed = &Error{
		Code:       "InvalidInstanceID.Malformed",
		Message:    "The specified instance ID is malformed. Ensure that you provide the full instance ID in the request, in the form i-xxxxxxxxxxxxxxxxx.",
		HTTPStatus: 400,
	}

	// ErrInvalidGroupNotFound 指定的安全组不存在
	ErrInvalidGroupNotFound = &Error{
		Code:       "InvalidGroup.NotFound",
		Message:    "The specified security group does not exist. Ensure that you specify the Region in which the security group is located, if it's not in the default Region.",
		HTTPStatus: 404,
	}

	// ErrInvalidGroupDuplicate 同名安全组已存在
	ErrInvalidGroupDuplicate = &Error{
		Code:       "InvalidGroup.Duplicate",
		Message:    "You cannot create a security group with the same name as an existing security group in the same VPC.",
		HTTPStatus: 400,
	}

	// ErrInvalidKeyPairNotFound 指定的密钥对不存在
	ErrInvalidKeyPairNotFound = &Error{
		Code:       "InvalidKeyPair.NotFound",
		Message:    "The specified key pair name does not exist. Ensure that you specify the Region in which the key pair is located, if it's not in the default Region.",
		HTTPStatus: 404,
	}

	// ErrInvalidKeyPairDuplicate 同名密钥对已存在
	ErrInvalidKeyPairDuplicate = &Error{
		Code:       "InvalidKeyPair.Duplicate",
		Message:    "The key pair name already exists in that Region. Choose a different name.",
		HTTPStatus: 400,
	}

	// ErrInvalidPermissionDuplicate 要添加的安全组规则已存在
	ErrInvalidPermissionDuplicate = &Error{
		Code:       "InvalidPermission.Duplicate",
		Message:    "The specified inbound or outbound rule already exists for that security group.",
		HTTPStatus: 400,
	}

	// ErrInstanceLimitExceeded 您达到了当前区域可以启动的实例数量上限
	ErrInstanceLimitExceeded = &Error{
		Code:       "InstanceLimitExceeded",
		Message:    "You've reached the limit on the number of instances you can run concurrently. If you need additional instances, request a service quota increase.",
		HTTPStatus: 400,
	}

	// ErrSecurityGroupLimitExceeded 您达到了 VPC 中安全组数量的上限
	ErrSecurityGroupLimitExceeded = &Error{
		Code:       "SecurityGroupLimitExceeded",
		Message:    "You've reached the limit on the number of security groups that you can create, or the number of security groups that you can assign to an instance.",
		HTTPStatus: 400,
	}

	// ErrSecurityGroupsPerInstanceLimitExceeded 您达到了单个实例可关联的安全组数量上限
	ErrSecurityGroupsPerInstanceLimitExceeded = &Error{
		Code:       "SecurityGroupsPerInstanceLimitExceeded",
		Message:    "You've reached the limit on the number of security groups you can associate with the specified instance.",
		HTTPStatus: 400,
	}

	// ErrKeyPairLimitExceeded 您达到了可创建的密钥对数量上限
	ErrKeyPairLimitExceeded = &Error{
		Code:       "KeyPairLimitExceeded",
		Message:    "You've reached the limit on the number of key pairs that you can have in this Region.",
		HTTPStatus: 400,
	}

	// ErrIncorrectInstanceState 实例当前状态不允许此操作
	ErrIncorrectInstanceState = &Error{
		Code:       "IncorrectInstanceState",
		Message:    "The instance is in an incorrect state for the requested operation.",
		HTTPStatus: 400,
	}

	// ErrRequestExpired 请求的签名时间戳已过期
	ErrRequestExpired = &Error{
		Code:       "RequestExpired",
		Message:    "The request reached the service more than 15 minutes after the date stamp on the request or more than 15 minutes after the request expiration date, or the date stamp on the request is more than 15 minutes in the future.",
		HTTPStatus: 400,
	}
)
