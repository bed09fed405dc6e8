package contentController

// ContentRequest is the create-content payload.
type ContentRequest struct {
	Language      string   `json:"language" validate:"required"`
	Type          string   `json:"type" validate:"required,oneof=documentation tutorial video practice roadmap"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Body          string   `json:"body"`
	Difficulty    string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Prerequisites []string `json:"prerequisites"`
	Tags          []string `json:"tags"`
	Status        string   `json:"status" validate:"omitempty,oneof=draft published archived"`
	Duration      string   `json:"duration"`
}

// ContentUpdateRequest carries partial updates; nil fields are left
// untouched.
type ContentUpdateRequest struct {
	Language      *string   `json:"language" validate:"omitempty,min=1"`
	Type          *string   `json:"type" validate:"omitempty,oneof=documentation tutorial video practice roadmap"`
	Title         *string   `json:"title" validate:"omitempty,min=1"`
	Description   *string   `json:"description" validate:"omitempty,min=1"`
	Body          *string   `json:"body"`
	Difficulty    *string   `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Prerequisites *[]string `json:"prerequisites"`
	Tags          *[]string `json:"tags"`
	Status        *string   `json:"status" validate:"omitempty,oneof=draft published archived"`
	Duration      *string   `json:"duration"`
}

// ReviewRequest is the append-review payload.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
