package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"backend/internal/domain"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Repo   repositories.BookingRepository
	Points repositories.PointsRepository
}

func NewBookingHandler(db *sql.DB) BookingHandler {
	return BookingHandler{
		Repo:   repositories.BookingRepository{DB: db},
		Points: repositories.PointsRepository{DB: db},
	}
}

type createBookingInput struct {
	CustomerID int64  `form:"customer_id" json:"customer_id"`
	ItemRef    string `form:"item_ref" json:"item_ref"`
	Transport  string `form:"transport" json:"transport"`
	Lodging    string `form:"lodging" json:"lodging"`
}

// POST /bookings
func (h BookingHandler) Create(c *gin.Context) {
	var in createBookingInput
	if !BindOrError(c, &in) {
		return
	}

	if in.CustomerID <= 0 || in.ItemRef == "" || in.Transport == "" || in.Lodging == "" {
		RespondDomainError(c, domain.ValidationError{
			Msg: "missing required fields for booking (customer_id, item_ref, transport, lodging)",
		})
		return
	}

	ref, err := domain.ParseItemRef(in.ItemRef)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.BookingService{Bookings: h.Repo, Points: h.Points, RequestID: requestID(c)}
	if _, err := svc.Create(in.CustomerID, ref, in.Transport, in.Lodging); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.String(http.StatusCreated, "booking created, points granted and history updated")
}

// GET /bookings?customer=&item=&status=
func (h BookingHandler) Search(c *gin.Context) {
	filter := repositories.BookingFilter{
		Customer: strings.TrimSpace(c.Query("customer")),
		Item:     strings.TrimSpace(c.Query("item")),
		Status:   strings.TrimSpace(c.Query("status")),
	}

	rows, err := h.Repo.Search(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /bookings/:id/voucher
func (h BookingHandler) Voucher(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondDomainError(c, domain.NotFoundError{Resource: "booking"})
		return
	}

	svc := services.VoucherService{Bookings: h.Repo, RequestID: requestID(c)}
	pdf, filename, err := svc.Generate(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondDomainError(c, domain.NotFoundError{Resource: "booking"})
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
