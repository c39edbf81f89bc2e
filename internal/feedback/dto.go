package feedback

import "github.com/easyhr/backend/internal"

// CreateFeedbackDTO uses a pointer for isAnonymous so a missing field can be
// told apart from an explicit false.
type CreateFeedbackDTO struct {
	Description string `json:"description"`
	IsAnonymous *bool  `json:"isAnonymous"`
}

func (dto CreateFeedbackDTO) Validate() error {
	if dto.Description == "" {
		return internal.NewRequiredFieldError("Description")
	}
	if dto.IsAnonymous == nil {
		return internal.NewRequiredFieldError("Is Anonymous")
	}
	return nil
}

type UpdateFeedbackDTO struct {
	ID int64 `json:"id"`
	CreateFeedbackDTO
}

func (dto UpdateFeedbackDTO) Validate() error {
	if dto.ID == 0 {
		return internal.NewRequiredFieldError("ID")
	}
	return dto.CreateFeedbackDTO.Validate()
}

type DeleteFeedbackDTO struct {
	ID int64 `json:"id"`
}

func (dto DeleteFeedbackDTO) Validate() error {
	if dto.ID == 0 {
		return internal.NewRequiredFieldError("ID")
	}
	return nil
}
