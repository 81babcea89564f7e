package http

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/common-availability-slots-generator/internal/config"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/in"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/out"
)

type AvailabilityController struct {
	useCase in.AvailabilityUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewAvailabilityController(useCase in.AvailabilityUseCase, cfg *config.Config, logger out.LoggerPort) *AvailabilityController {
	return &AvailabilityController{
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}
}

func (c *AvailabilityController) RegisterRoutes(router *gin.Engine) {
	router.GET("/", c.root)

	api := router.Group("/api")
	api.Use(c.basicAuth())
	{
		api.POST("/available-slots", c.findAvailableSlots)
	}
}

func (c *AvailabilityController) root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Common availability slots generator"})
}

func (c *AvailabilityController) findAvailableSlots(ctx *gin.Context) {
	var query domain.AvailabilityQuery
	if err := ctx.ShouldBindJSON(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	slots, err := c.useCase.FindCommonSlots(ctx.Request.Context(), query)
	if err != nil {
		status, detail := c.mapError(err)
		ctx.JSON(status, gin.H{"detail": detail})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"slots": slots})
}

// mapError переводит таксономию ошибок сервиса в статус-коды.
// Все, что не входит в таксономию, наружу уходит одним общим текстом.
func (c *AvailabilityController) mapError(err error) (int, string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		// Частично найденные пользователи - ошибка запроса, а не ресурса
		if notFoundErr.Partial {
			return http.StatusBadRequest, notFoundErr.Error()
		}
		return http.StatusNotFound, notFoundErr.Error()
	}

	var timezoneErr *domain.TimezoneError
	if errors.As(err, &timezoneErr) {
		return http.StatusBadRequest, timezoneErr.Error()
	}

	var dataErr *domain.DataAccessError
	if errors.As(err, &dataErr) {
		return http.StatusInternalServerError, dataErr.Error()
	}

	internalErr := &domain.InternalError{Err: err}
	c.logger.Error("http.request.unhandled_error", out.LogFields{
		"error": internalErr.Error(),
	})
	return http.StatusInternalServerError, "An unexpected error occurred"
}

func (c *AvailabilityController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
