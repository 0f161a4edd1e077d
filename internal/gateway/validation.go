package gateway

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type userHeader struct {
	UserID int64 `header:"X-Sharer-User-Id" binding:"required,gt=0"`
}

type idURI struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

type stateQuery struct {
	State string `form:"state" binding:"omitempty,booking_state"`
}

type approvedQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}

type bookingBody struct {
	ItemID int64  `json:"itemId" binding:"required,gt=0"`
	Start  string `json:"start" binding:"required,booking_time"`
	End    string `json:"end" binding:"required,booking_time"`
}

type userBody struct {
	Name  string `json:"name" binding:"required,notblank"`
	Email string `json:"email" binding:"required,email"`
}

type userPatchBody struct {
	Name  *string `json:"name" binding:"omitempty,notblank"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type itemBody struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId" binding:"omitempty,gt=0"`
}

type itemPatchBody struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description" binding:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

type commentBody struct {
	Text string `json:"text" binding:"required,notblank"`
}

type requestBody struct {
	Text        string `json:"text" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom tags used by the request types to gin's validator.
func RegisterValidators() error {
	registerOnce.Do(func() {
		registerErr = registerTags(binding.Validator.Engine())
	})
	return registerErr
}

func registerTags(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return fmt.Errorf("unsupported validator engine %T", engine)
	}

	tags := map[string]validator.Func{
		"booking_state": func(fl validator.FieldLevel) bool {
			_, err := domain.ParseBookingState(fl.Field().String())
			return err == nil
		},
		"booking_time": func(fl validator.FieldLevel) bool {
			_, err := domain.ParseInstant(fl.Field().String())
			return err == nil
		},
		"notblank": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}
