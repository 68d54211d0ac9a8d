package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeOK   = 0
	CodeFail = -1
)

type Response struct {
	Code int         `json:"code"` // 0:成功, -1:失败
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: CodeOK,
		Msg:  "success",
		Data: data,
	})
}

func Fail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Response{
		Code: CodeFail,
		Msg:  msg,
		Data: nil,
	})
}

// BadRequest 参数类错误，HTTP 状态码也置 400，方便前端区分
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: CodeFail,
		Msg:  msg,
		Data: nil,
	})
}
