package handlers

import (
	"database/sql"
	"net/http"

	"backend/internal/domain"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type DiscountTypeHandler struct {
	Repo repositories.DiscountTypeRepository
}

func NewDiscountTypeHandler(db *sql.DB) DiscountTypeHandler {
	return DiscountTypeHandler{Repo: repositories.DiscountTypeRepository{DB: db}}
}

type createDiscountTypeInput struct {
	Name string `form:"name" json:"name"`
}

// POST /discount-types
func (h DiscountTypeHandler) Create(c *gin.Context) {
	var in createDiscountTypeInput
	if !BindOrError(c, &in) {
		return
	}

	if in.Name == "" {
		RespondDomainError(c, domain.ValidationError{Field: "name", Msg: "discount type name is required"})
		return
	}

	id, err := h.Repo.Create(in.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.String(http.StatusCreated, "discount type created, id: %d", id)
}

// GET /discount-types
func (h DiscountTypeHandler) ListNames(c *gin.Context) {
	names, err := h.Repo.ListNames()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}
