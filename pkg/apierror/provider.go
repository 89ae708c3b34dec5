package apierror

import (
	"context"
	"errors"
	"strings"

	smithy "github.com/aws/smithy-go"
)

// knownErrors 所有预定义错误的闭集，按 Code 索引
// 用于把 provider 返回的错误代码映射到固定的 HTTP 状态码
var knownErrors = func() map[string]*Error {
	all := []*Error{
		// 客户端错误
		ErrAuthFailure,
		ErrUnauthorizedOperation,
		ErrOptInRequired,
		ErrInvalidParameterValue,
		ErrInvalidParameterCombination,
		ErrMissingParameter,
		ErrValidationError,
		ErrInvalidAMIIDNotFound,
		ErrInvalidAMIIDMalformed,
		ErrInvalidInstanceIDNotFound,
		ErrInvalidInstanceIDMalformed,
		ErrInvalidGroupNotFound,
		ErrInvalidGroupDuplicate,
		ErrInvalidKeyPairNotFound,
		ErrInvalidKeyPairDuplicate,
		ErrInvalidPermissionDuplicate,
		ErrInstanceLimitExceeded,
		ErrSecurityGroupLimitExceeded,
		ErrSecurityGroupsPerInstanceLimitExceeded,
		ErrKeyPairLimitExceeded,
		ErrIncorrectInstanceState,
		ErrRequestExpired,
		// 服务器错误
		ErrBandwidthLimitExceeded,
		ErrInsufficientAddressCapacity,
		ErrInsufficientCapacity,
		ErrInsufficientInstanceCapacity,
		ErrServerInternal,
		ErrInternalFailure,
		ErrRequestLimitExceeded,
		ErrServiceUnavailable,
		ErrInternalError,
		ErrUnavailable,
	}
	m := make(map[string]*Error, len(all))
	for _, e := range all {
		m[e.Code] = e
	}
	return m
}()

// ErrorForCode 根据错误代码查找预定义的错误
func ErrorForCode(code string) (*Error, bool) {
	e, ok := knownErrors[code]
	return e, ok
}

// FromProvider 把 AWS SDK 返回的任意错误转换为 *Error
//
// 转换规则：
//   - 已经是 *Error 的错误原样返回
//   - AWS API 错误（smithy.APIError）保留原始的错误代码和消息，
//     HTTP 状态码按错误代码的闭集映射
//   - 超时（context.DeadlineExceeded）映射为 ServiceUnavailable
//   - 其他错误（网络失败、凭证加载失败等）统一映射为 ServiceUnavailable，
//     原始错误保留在 RawError 中，不会泄露到响应里
func FromProvider(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var providerErr smithy.APIError
	if errors.As(err, &providerErr) {
		code := providerErr.ErrorCode()
		return &Error{
			Code:       code,
			Message:    providerErr.ErrorMessage(),
			HTTPStatus: statusForCode(code, providerErr.ErrorFault()),
			RawError:   err,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return WrapError(ErrServiceUnavailable, "The request to the cloud provider timed out.", err)
	}

	return WrapError(ErrServiceUnavailable, "The cloud provider could not be reached.", err)
}

// statusForCode 把 AWS 错误代码映射到 HTTP 状态码
// 预定义代码使用闭集中的状态码，未知代码按命名约定和错误来源推断
func statusForCode(code string, fault smithy.ErrorFault) int {
	if e, ok := knownErrors[code]; ok {
		return e.HTTPStatus
	}

	switch {
	case strings.HasSuffix(code, ".NotFound"):
		return 404
	case strings.HasSuffix(code, ".Malformed"),
		strings.HasSuffix(code, ".Duplicate"),
		strings.HasSuffix(code, ".InUse"),
		strings.HasSuffix(code, "LimitExceeded"):
		return 400
	case strings.HasPrefix(code, "Insufficient") && strings.HasSuffix(code, "Capacity"):
		return 503
	}

	switch fault {
	case smithy.FaultClient:
		return 400
	default:
		return 500
	}
}
