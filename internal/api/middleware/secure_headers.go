package middleware

import "github.com/gin-gonic/gin"

// SecureHeaders sets a baseline of response headers on every route. Uploaded
// images are consumed cross-origin by the public site, hence the relaxed
// resource policy.
func SecureHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Cross-Origin-Resource-Policy", "cross-origin")
		c.Next()
	}
}
