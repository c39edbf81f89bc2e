package recognition

import "github.com/easyhr/backend/internal"

type CreateRecognitionDTO struct {
	ToUser       int64  `json:"toUser"`
	CompanyValue int64  `json:"companyValue"`
	Description  string `json:"description"`
}

func (dto CreateRecognitionDTO) Validate() error {
	if dto.ToUser == 0 {
		return internal.NewRequiredFieldError("Employee")
	}
	if dto.CompanyValue == 0 {
		return internal.NewRequiredFieldError("Company value")
	}
	if dto.Description == "" {
		return internal.NewRequiredFieldError("Description")
	}
	return nil
}

// UpdateRecognitionDTO never changes the recipient, only the value and text.
type UpdateRecognitionDTO struct {
	ID           int64  `json:"id"`
	CompanyValue int64  `json:"companyValue"`
	Description  string `json:"description"`
}

func (dto UpdateRecognitionDTO) Validate() error {
	if dto.ID == 0 {
		return internal.NewRequiredFieldError("ID")
	}
	if dto.CompanyValue == 0 {
		return internal.NewRequiredFieldError("Company value")
	}
	if dto.Description == "" {
		return internal.NewRequiredFieldError("Description")
	}
	return nil
}

type DeleteRecognitionDTO struct {
	ID int64 `json:"id"`
}

func (dto DeleteRecognitionDTO) Validate() error {
	if dto.ID == 0 {
		return internal.NewRequiredFieldError("ID")
	}
	return nil
}
