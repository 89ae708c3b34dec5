package apierror_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	smithy "github.com/aws/smithy-go"
	"github.com/gin-gonic/gin"
	"github.com/jimyag/jcp/pkg/apierror"
)

// 示例：创建和序列化错误响应
func ExampleNewErrorResponse() {
	// 创建错误
	err := apierror.NewError(
		"InvalidInstanceID.NotFound",
		"The instance ID 'i-1a2b3c4d' does not exist",
	)

	// 创建错误响应
	errorResp := apierror.NewErrorResponse("req-4667cd21a7ff7b42", err)

	// JSON 格式
	jsonData, _ := json.Marshal(errorResp)
	fmt.Println(string(jsonData))
	// 输出：{"error":"InvalidInstanceID.NotFound","message":"The instance ID 'i-1a2b3c4d' does not exist","request_id":"req-4667cd21a7ff7b42"}

	// XML 格式
	xmlData, _ := errorResp.ToXML()
	fmt.Println(string(xmlData))
	// 输出：
	// <Response>
	//     <Error>
	//         <Code>InvalidInstanceID.NotFound</Code>
	//         <Message>The instance ID 'i-1a2b3c4d' does not exist</Message>
	//     </Error>
	//     <RequestID>req-4667cd21a7ff7b42</RequestID>
	// </Response>
}

// 示例：在 gin 中渲染错误响应
func ExampleErrorResponse_gin() {
	router := gin.Default()

	router.DELETE("/instances/:instance_id", func(c *gin.Context) {
		instanceID := c.Param("instance_id")

		if instanceID == "i-1a2b3c4d" {
			apiErr := apierror.WrapError(apierror.ErrInvalidInstanceIDNotFound,
				fmt.Sprintf("The instance ID '%s' does not exist", instanceID), nil)
			c.JSON(apiErr.HTTPStatus, apierror.NewErrorResponse("req-4667cd21a7ff7b42", apiErr))
			return
		}

		c.JSON(http.StatusOK, gin.H{"instance_id": instanceID})
	})

	router.Run(":8080")
}

// 示例：把云端返回的错误转换为 API 错误
func ExampleFromProvider() {
	// AWS API 错误保留原始代码，HTTP 状态码按代码映射
	providerErr := &smithy.GenericAPIError{
		Code:    "InvalidKeyPair.NotFound",
		Message: "The key pair 'deploy-key' does not exist",
		Fault:   smithy.FaultClient,
	}
	apiErr := apierror.FromProvider(fmt.Errorf("operation error EC2: DescribeKeyPairs, %w", providerErr))
	fmt.Println(apiErr.Code, apiErr.HTTPStatus)

	// 超时统一映射为 ServiceUnavailable
	timeoutErr := apierror.FromProvider(fmt.Errorf("operation error EC2: RunInstances, %w", context.DeadlineExceeded))
	fmt.Println(timeoutErr.Code, timeoutErr.HTTPStatus)
	// 输出：
	// InvalidKeyPair.NotFound 404
	// ServiceUnavailable 503
}

// 示例：使用 RawError 进行服务端调试
func ExampleNewErrorWithRaw() {
	// 创建带原始错误的 API 错误
	transportErr := fmt.Errorf("dial tcp 198.51.100.7:443: connect: connection refused")
	err := apierror.NewErrorWithRaw(
		"InternalError",
		"An internal error has occurred",
		transportErr,
	)

	// 服务端可以访问 RawError 进行调试
	if err.RawError != nil {
		fmt.Printf("Debug: %v\n", err.RawError)
	}

	// 使用 errors.Unwrap 获取原始错误
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil {
		fmt.Printf("Unwrapped: %v\n", unwrapped)
	}

	// 序列化时 RawError 不会被包含
	jsonData, _ := json.Marshal(err)
	fmt.Println(string(jsonData))
	// 输出：{"code":"InternalError","message":"An internal error has occurred"}
}
