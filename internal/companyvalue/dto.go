package companyvalue

import "github.com/easyhr/backend/internal"

type CreateCompanyValueDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (dto CreateCompanyValueDTO) Validate() error {
	if dto.Title == "" {
		return internal.NewRequiredFieldError("Title")
	}
	if dto.Description == "" {
		return internal.NewRequiredFieldError("Description")
	}
	return nil
}

type UpdateCompanyValueDTO struct {
	ID int64 `json:"id"`
	CreateCompanyValueDTO
}

func (dto UpdateCompanyValueDTO) Validate() error {
	if dto.ID == 0 {
		return internal.NewRequiredFieldError("ID")
	}
	return dto.CreateCompanyValueDTO.Validate()
}

type DeleteCompanyValueDTO struct {
	ID int64 `json:"id"`
}

func (dto DeleteCompanyValueDTO) Validate() error {
	if dto.ID == 0 {
		return internal.NewRequiredFieldError("ID")
	}
	return nil
}
