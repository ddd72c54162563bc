package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/models"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type accountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, s.logger, fmt.Errorf("%w: malformed request body", common.ErrorValidation))
		return
	}

	token, user, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Message: "Invalid email or password"})
			return
		}
		abortWithError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

func (s *HTTPServer) updateAccount(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, s.logger, fmt.Errorf("%w: malformed request body", common.ErrorValidation))
		return
	}

	user, err := s.users.UpdateAccount(c.Request.Context(), c.GetInt64(userIDKey), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.AbortWithStatusJSON(http.StatusConflict, errorResponse{Message: "Email is already in use"})
			return
		}
		abortWithError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
