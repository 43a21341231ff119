package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/staybook/internal/server/http/dto"
)

// MaxRequestBody caps the size of a request body after decompression.
const MaxRequestBody = 1 << 20

// DecompressRequest unwraps gzip encoded request bodies and limits every body
// to MaxRequestBody bytes.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBody)
			c.Next()
			return
		}

		body := c.Request.Body
		defer body.Close()

		reader, err := gzip.NewReader(body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed gzip body"})
			return
		}
		defer reader.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, reader, MaxRequestBody)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
