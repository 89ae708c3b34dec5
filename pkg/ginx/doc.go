// Package ginx 提供 gin 框架的 handler 适配器，支持自动参数绑定和响应处理
//
// 支持 JSON 和 XML 格式：
//   - 默认使用 JSON 格式
//   - 如果请求的 Content-Type 包含 "application/xml" 或 "text/xml"，则使用 XML 解析请求
//   - 如果使用 XML 解析请求，响应也会使用 XML 格式
//   - 错误响应也会根据请求格式自动选择 JSON 或 XML
//
// 支持多种 handler 函数签名：
//
//	// 1. 有参数，有返回值，有 error
//	func(c *gin.Context, args *Args) (resp, error)
//
//	// 2. 有参数，只有 error
//	func(c *gin.Context, args *Args) error
//
//	// 3. 有参数，只有返回值
//	func(c *gin.Context, args *Args) resp
//
//	// 4. 无参数，有返回值，有 error
//	func(c *gin.Context) (resp, error)
//
//	// 5. 无参数，只有 error
//	func(c *gin.Context) error
//
//	// 6. 无参数，只有返回值
//	func(c *gin.Context) resp
//
//	// 7. 无参数，无返回值
//	func(c *gin.Context)
//
// 使用示例：
//
//	router := gin.Default()
//
//	// 有参数，有返回值，有 error
//	router.POST("/instances", ginx.Adapt5(func(c *gin.Context, args *RunInstancesRequest) (*RunInstancesResponse, error) {
//	    return &RunInstancesResponse{...}, nil
//	}))
//
//	// 有参数，只有 error
//	router.DELETE("/instances/:instance_id", ginx.Adapt4(func(c *gin.Context, args *TerminateInstanceRequest) error {
//	    return nil
//	}))
//
//	// 无参数，有返回值
//	router.GET("/health", ginx.Adapt2(func(c *gin.Context) string {
//	    return "ok"
//	}))
//
// 错误处理：handler 返回 *apierror.Error 时，响应状态码取自错误的
// HTTPStatus，响应体是 AWS 风格的错误结构。中间件通过 SetRequestID
// 设置的请求 ID 会自动带入错误响应的 request_id 字段。
package ginx
