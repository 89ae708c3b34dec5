// Package apierror 提供 AWS 风格的错误类型，用于所有服务的统一错误处理
//
// 错误响应格式支持 XML 和 JSON 两种格式：
//
//	XML 格式：
//	<Response>
//	    <Error>
//	        <Code>InvalidInstanceID.NotFound</Code>
//	        <Message>The instance ID 'i-1a2b3c4d' does not exist</Message>
//	    </Error>
//	    <RequestID>req-123456789</RequestID>
//	</Response>
//
//	JSON 格式：
//	{
//	    "error": "InvalidInstanceID.NotFound",
//	    "message": "The instance ID 'i-1a2b3c4d' does not exist",
//	    "request_id": "req-123456789"
//	}
//
// 使用示例：
//
//	// 创建错误
//	err := apierror.NewError("InvalidInstanceID.NotFound", "The instance ID 'i-1a2b3c4d' does not exist")
//
//	// 创建错误响应
//	errorResp := apierror.NewErrorResponse("request-id", err)
//
//	// 在 gin 中使用
//	c.XML(http.StatusNotFound, errorResp)
//	// 或
//	c.JSON(http.StatusNotFound, errorResp)
//
// 预定义错误变量覆盖了 AWS EC2 API 的常见错误代码，
// client.go 中是客户端错误（4xx），server.go 中是服务器错误（5xx），
// 每个错误都带有固定的 HTTP 状态码。
//
// 使用示例：
//
//	// 直接使用预定义的错误
//	errorResp := apierror.NewErrorResponse("request-id", apierror.ErrInsufficientInstanceCapacity)
//
//	// 保留代码和状态码，替换消息
//	err := apierror.WrapError(apierror.ErrMissingParameter, "image_id is required", nil)
//
// FromProvider 把 AWS SDK 调用返回的错误转换为 *Error，
// 保留 provider 的错误代码和消息，HTTP 状态码按闭集映射：
//
//	out, err := client.RunInstances(ctx, input)
//	if err != nil {
//	    return nil, apierror.FromProvider(err)
//	}
package apierror
