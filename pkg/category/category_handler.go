package category

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/rest"
)

type CategoryDTO struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Icon      string `json:"icon,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

type Handler struct {
	categoryService Service
}

func NewHandler(categoryService Service) *Handler {
	return &Handler{categoryService: categoryService}
}

// List godoc
// @Summary List all expense categories
// @Tags Category
// @Produce json
// @Success 200 {array} CategoryDTO
// @Router /api/categories [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	categoriesDTO := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		categoriesDTO = append(categoriesDTO, CategoryToDTO(category))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(categoriesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Create godoc
// @Summary Create a new category
// @Tags Category
// @Accept json
// @Produce json
// @Param category body CategoryDTO true "Category"
// @Success 201 {object} CategoryDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 409 {object} rest.ErrorResponse "Name already taken"
// @Router /api/categories [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Creating category")

	var categoryDTO CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&categoryDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"})
		return
	}

	created, err := h.categoryService.Create(r.Context(), DTOToCategory(categoryDTO))
	if err != nil {
		if errors.Is(err, ErrCategoryNameTaken) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Category name already exists"})
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(CategoryToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func CategoryToDTO(category Category) CategoryDTO {
	return CategoryDTO{
		Id:        category.Id,
		Name:      category.Name,
		Color:     category.Color,
		Icon:      category.Icon,
		IsDefault: category.IsDefault,
	}
}

func DTOToCategory(categoryDTO CategoryDTO) Category {
	return Category{
		Id:        categoryDTO.Id,
		Name:      categoryDTO.Name,
		Color:     categoryDTO.Color,
		Icon:      categoryDTO.Icon,
		IsDefault: categoryDTO.IsDefault,
	}
}
