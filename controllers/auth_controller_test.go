package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/suyogshejal2004/waterreminder/services"

	"github.com/gin-gonic/gin"
)

func TestWriteAuthErr(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			"duplicate email maps to conflict",
			fmt.Errorf("%w: an account with this email already exists", services.ErrConflict),
			http.StatusConflict,
		},
		{
			"validation maps to bad request",
			fmt.Errorf("%w: bad input", services.ErrValidation),
			http.StatusBadRequest,
		},
		{
			"anything else maps to internal error",
			fmt.Errorf("connection refused"),
			http.StatusInternalServerError,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeAuthErr(c, tc.err)

			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
