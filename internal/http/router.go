package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlessioVisconti/HotelBear/internal/config"
	h "github.com/AlessioVisconti/HotelBear/internal/http/handlers"
	"github.com/AlessioVisconti/HotelBear/internal/http/middleware"
	"github.com/AlessioVisconti/HotelBear/internal/session"
)

func NewRouter(env config.Env, store session.Store, monitor *session.Monitor) *gin.Engine {
	h.Setup(h.App{Env: env, Store: store, Monitor: monitor})

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(),
		middleware.LoadSession(store, monitor),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.LoadHTMLGlob(env.TemplatesGlob)

	r.NoRoute(func(c *gin.Context) {
		c.Redirect(stdhttp.StatusFound, "/")
	})

	r.GET("/healthz", h.Health)

	// Public pages
	r.GET("/", h.Home)
	r.GET("/book", h.ShowBookingForm)
	r.POST("/book", h.SubmitBooking)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.RegisterCustomer)

	// Front desk
	desk := r.Group("/", middleware.Guard(middleware.RouteBackOffice))
	{
		desk.GET("/dashboard", h.Dashboard)
		desk.GET("/calendar", h.CalendarPage)

		res := desk.Group("/reservations/:id")
		res.GET("", h.ShowReservation)
		res.POST("", h.UpdateReservation)
		res.POST("/cancel", h.CancelReservation)
		res.GET("/summary.pdf", h.ReservationSummaryPDF)

		res.POST("/guests", h.SaveGuest)
		res.GET("/guests/:guestId/delete", h.ConfirmDeleteGuest)
		res.POST("/guests/:guestId/delete", h.DeleteGuest)

		res.POST("/charges", h.SaveCharge)
		res.GET("/charges/:chargeId/delete", h.ConfirmDeleteCharge)
		res.POST("/charges/:chargeId/delete", h.DeleteCharge)

		res.POST("/payments", h.SavePayment)
		res.GET("/payments/:paymentId/delete", h.ConfirmDeletePayment)
		res.POST("/payments/:paymentId/delete", h.DeletePayment)

		res.POST("/invoices", h.CreateInvoice)
		res.POST("/invoices/:invoiceId/cancel", h.CancelInvoice)
		res.GET("/invoices/:invoiceId/pdf", h.InvoicePDF)
	}

	// Rooms: read for all staff, mutations admin-only
	rooms := r.Group("/rooms", middleware.Guard(middleware.RouteRoomsRead))
	{
		rooms.GET("", h.ListRooms)
		rooms.GET("/:id", h.ShowRoom)

		adminRooms := rooms.Group("", middleware.Guard(middleware.RouteRoomsWrite))
		adminRooms.POST("", h.CreateRoom)
		adminRooms.POST("/:id", h.UpdateRoom)
		adminRooms.GET("/:id/delete", h.ConfirmDeleteRoom)
		adminRooms.POST("/:id/delete", h.DeleteRoom)
		adminRooms.POST("/:id/photos", h.UploadRoomPhoto)
		adminRooms.POST("/:id/photos/:photoId/delete", h.DeleteRoomPhoto)
		adminRooms.POST("/:id/photos/:photoId/cover", h.SetRoomCover)
	}

	// Admin-only back office
	staff := r.Group("/staff", middleware.Guard(middleware.RouteStaffAdmin))
	{
		staff.GET("", h.StaffPage)
		staff.POST("", h.RegisterStaff)
		staff.POST("/:id/deactivate", h.DeactivateStaff)
		staff.POST("/:id/reactivate", h.ReactivateStaff)
	}

	methods := r.Group("/payment-methods", middleware.Guard(middleware.RoutePaymentMethods))
	{
		methods.GET("", h.PaymentMethodsPage)
		methods.POST("", h.CreatePaymentMethod)
		methods.POST("/:id", h.UpdatePaymentMethod)
	}

	return r
}
