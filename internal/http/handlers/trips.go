package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	Repo repositories.TripRepository
}

func NewTripHandler(db *sql.DB) TripHandler {
	return TripHandler{Repo: repositories.TripRepository{DB: db}}
}

type createTripInput struct {
	Name        string  `form:"name" json:"name"`
	Description string  `form:"description" json:"description"`
	StartDate   string  `form:"start_date" json:"start_date"`
	EndDate     string  `form:"end_date" json:"end_date"`
	Transport   string  `form:"transport" json:"transport"`
	Capacity    int     `form:"capacity" json:"capacity"`
	Price       float64 `form:"price" json:"price"`
}

// POST /trips
func (h TripHandler) Create(c *gin.Context) {
	var in createTripInput
	if !BindOrError(c, &in) {
		return
	}

	// zero counts as missing for both numeric fields
	if in.Name == "" || in.StartDate == "" || in.EndDate == "" || in.Capacity == 0 || in.Price == 0 {
		RespondDomainError(c, domain.ValidationError{
			Msg: "missing required fields for trip (name, start_date, end_date, capacity, price)",
		})
		return
	}

	id, err := h.Repo.Create(models.Trip{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Transport:   in.Transport,
		Capacity:    in.Capacity,
		Price:       in.Price,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.String(http.StatusCreated, "trip created, id: %d", id)
}

// GET /trips
func (h TripHandler) List(c *gin.Context) {
	trips, err := h.Repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /trips/:id
func (h TripHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondDomainError(c, domain.NotFoundError{Resource: "trip"})
		return
	}

	trip, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondDomainError(c, domain.NotFoundError{Resource: "trip"})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}
