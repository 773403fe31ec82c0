package dto

import "time"

// CreateReviewRequest entrada para reseñar un negocio o uno de sus productos.
type CreateReviewRequest struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=1000"`
	ProductID string `json:"product_id" validate:"omitempty,uuid"`
}

// ReviewResponse salida de una reseña.
type ReviewResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	ProductID   string    `json:"product_id,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	AuthorEmail string    `json:"author_email,omitempty"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

// BusinessReviewsResponse reseñas del negocio propio con su promedio.
type BusinessReviewsResponse struct {
	Items         []ReviewResponse `json:"items"`
	TotalReviews  int              `json:"total_reviews"`
	AverageRating Rating           `json:"average_rating"`
}
