package types

import "time"

type CreateRatingRequest struct {
	Barcode string   `json:"barcode" binding:"required"`
	Score   int      `json:"score" binding:"required,min=1,max=5"` // 评分 1-5
	Comment string   `json:"comment"`
	Tags    []string `json:"tags"`
}

type RatingItem struct {
	ID        int64     `json:"id"`
	Barcode   string    `json:"barcode"`
	UserID    string    `json:"user_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

type ListRatingsResponse struct {
	Items []RatingItem `json:"items"`
	Avg   float64      `json:"avg"`
	Count int64        `json:"count"`
}
