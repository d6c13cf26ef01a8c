package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/gateway"
	"github.com/AlessioVisconti/HotelBear/internal/http/middleware"
	"github.com/AlessioVisconti/HotelBear/internal/utils"
)

// GET /payment-methods
func PaymentMethodsPage(c *gin.Context) {
	methods, err := gateway.PaymentMethodGateway{Client: client(c)}.List(c.Request.Context())
	if err != nil {
		renderError(c, "payment_methods.html", nil, err)
		return
	}
	c.HTML(http.StatusOK, "payment_methods.html", view(c, gin.H{"Methods": methods}))
}

// POST /payment-methods
func CreatePaymentMethod(c *gin.Context) {
	dto := models.CreatePaymentMethod{
		Code:        strings.TrimSpace(c.PostForm("code")),
		Description: strings.TrimSpace(c.PostForm("description")),
	}
	if dto.Code == "" {
		renderError(c, "payment_methods.html", nil, domain.ValidationError{Field: "code", Msg: "required"})
		return
	}

	if _, err := (gateway.PaymentMethodGateway{Client: client(c)}).Create(c.Request.Context(), dto); err != nil {
		renderError(c, "payment_methods.html", nil, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "payment_method", "create", "code="+dto.Code)
	c.Redirect(http.StatusFound, "/payment-methods")
}

// POST /payment-methods/:id
func UpdatePaymentMethod(c *gin.Context) {
	dto := models.UpdatePaymentMethod{
		Description: strings.TrimSpace(c.PostForm("description")),
	}
	switch c.PostForm("active") {
	case "true":
		active := true
		dto.IsActive = &active
	case "false":
		active := false
		dto.IsActive = &active
	}

	if _, err := (gateway.PaymentMethodGateway{Client: client(c)}).Update(c.Request.Context(), c.Param("id"), dto); err != nil {
		renderError(c, "payment_methods.html", nil, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "payment_method", "update", "id="+c.Param("id"))
	c.Redirect(http.StatusFound, "/payment-methods")
}
