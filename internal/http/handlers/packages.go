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

type PackageHandler struct {
	Repo repositories.PackageRepository
}

func NewPackageHandler(db *sql.DB) PackageHandler {
	return PackageHandler{Repo: repositories.PackageRepository{DB: db}}
}

type createPackageInput struct {
	Name         string  `form:"name" json:"name"`
	Destination  string  `form:"destination" json:"destination"`
	PartySize    int     `form:"party_size" json:"party_size"`
	Discount     float64 `form:"discount" json:"discount"`
	DiscountType string  `form:"discount_type" json:"discount_type"`
	Price        float64 `form:"price" json:"price"`
}

// POST /packages
func (h PackageHandler) Create(c *gin.Context) {
	var in createPackageInput
	if !BindOrError(c, &in) {
		return
	}

	// zero counts as missing for both numeric fields
	if in.Name == "" || in.Destination == "" || in.PartySize == 0 || in.DiscountType == "" || in.Price == 0 {
		RespondDomainError(c, domain.ValidationError{
			Msg: "missing required fields for package (name, destination, party_size, discount_type, price)",
		})
		return
	}

	id, err := h.Repo.Create(models.TravelPackage{
		Name:         in.Name,
		Destination:  in.Destination,
		PartySize:    in.PartySize,
		Discount:     in.Discount,
		DiscountType: in.DiscountType,
		Price:        in.Price,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.String(http.StatusCreated, "package created, id: %d", id)
}

// GET /packages
func (h PackageHandler) List(c *gin.Context) {
	packages, err := h.Repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /packages/:id
func (h PackageHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondDomainError(c, domain.NotFoundError{Resource: "package"})
		return
	}

	pkg, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondDomainError(c, domain.NotFoundError{Resource: "package"})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}
