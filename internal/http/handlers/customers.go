package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	Repo   repositories.CustomerRepository
	Points repositories.PointsRepository
}

func NewCustomerHandler(db *sql.DB) CustomerHandler {
	return CustomerHandler{
		Repo:   repositories.CustomerRepository{DB: db},
		Points: repositories.PointsRepository{DB: db},
	}
}

type createCustomerInput struct {
	Name       string `form:"name" json:"name"`
	NationalID string `form:"national_id" json:"national_id"`
	Email      string `form:"email" json:"email"`
	Phone      string `form:"phone" json:"phone"`
	Notes      string `form:"notes" json:"notes"`
}

// POST /customers
func (h CustomerHandler) Create(c *gin.Context) {
	var in createCustomerInput
	if !BindOrError(c, &in) {
		return
	}

	if in.Name == "" || in.NationalID == "" {
		RespondDomainError(c, domain.ValidationError{Msg: "name and national_id are required"})
		return
	}

	exists, err := h.Repo.ExistsByNationalID(in.NationalID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists {
		RespondDomainError(c, domain.ConflictError{Resource: "customer", Msg: "national ID already registered"})
		return
	}

	id, err := h.Repo.Create(models.Customer{
		Name:       in.Name,
		NationalID: in.NationalID,
		Email:      in.Email,
		Phone:      in.Phone,
		Notes:      in.Notes,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.String(http.StatusCreated, "customer created, id: %d", id)
}

// GET /customers
func (h CustomerHandler) List(c *gin.Context) {
	customers, err := h.Repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GET /customers/search?query=
func (h CustomerHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("query"))
	if term == "" {
		RespondDomainError(c, domain.ValidationError{Field: "query", Msg: "a search term is required"})
		return
	}

	matches, err := h.Repo.Search(term)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

type redeemInput struct {
	CustomerID int64 `form:"customer_id" json:"customer_id"`
	Points     int   `form:"points" json:"points"`
}

// POST /customers/redeem
func (h CustomerHandler) Redeem(c *gin.Context) {
	var in redeemInput
	if !BindOrError(c, &in) {
		return
	}

	if in.CustomerID <= 0 || in.Points <= 0 {
		RespondDomainError(c, domain.ValidationError{Msg: "customer_id and a positive points amount are required"})
		return
	}

	svc := services.PointsService{Points: h.Points, RequestID: requestID(c)}
	if err := svc.Redeem(in.CustomerID, in.Points); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.String(http.StatusOK, "points redeemed and history updated")
}

// GET /customers/:id/points
func (h CustomerHandler) PointsHistory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondDomainError(c, domain.NotFoundError{Resource: "customer"})
		return
	}

	balance, err := h.Points.Balance(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondDomainError(c, domain.NotFoundError{Resource: "customer"})
			return
		}
		RespondDomainError(c, err)
		return
	}

	history, err := h.Points.History(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_id": id,
		"points":      balance,
		"history":     history,
	})
}
