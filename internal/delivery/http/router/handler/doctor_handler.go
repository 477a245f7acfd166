// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"voll/internal/delivery/http/response"
	"voll/internal/domain/entity"
	domainerrors "voll/internal/domain/errors"
	"voll/internal/errors"
	"voll/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const doctorsPath = "/medicos"

// DoctorHandler holds dependencies for doctor-related handlers.
type DoctorHandler struct {
	uc usecase.DoctorUsecase
}

// NewDoctorHandler is the constructor for DoctorHandler, injected by Fx.
func NewDoctorHandler(uc usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{uc: uc}
}

// updateDoctorRequest is the PUT body. CRM and specialty are decoded only to reject them.
type updateDoctorRequest struct {
	ID        string                     `json:"id"`
	Name      *string                    `json:"name"`
	Email     *string                    `json:"email"`
	Phone     *string                    `json:"phone"`
	Address   *usecase.AddressPatchInput `json:"address"`
	CRM       *string                    `json:"crm"`
	Specialty *string                    `json:"specialty"`
}

// listDoctorsQuery is the query string of GET /medicos.
type listDoctorsQuery struct {
	Page      int
	Size      int
	Sort      string
	Direction string
}

// Register handles doctor registration.
func (h *DoctorHandler) Register(c echo.Context) error {
	var input usecase.RegisterDoctorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	input.Normalize()
	if err := c.Validate(&input); err != nil {
		return err
	}

	detail, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, doctorsPath+"/"+detail.ID.String(), detail)
}

// List handles the paginated listing of active doctors.
func (h *DoctorHandler) List(c echo.Context) error {
	req, err := bindPageRequest(c)
	if err != nil {
		return err
	}

	page, err := h.uc.List(c.Request().Context(), req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Get handles reading one doctor by id.
func (h *DoctorHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// Update handles changes to a doctor's contact data.
func (h *DoctorHandler) Update(c echo.Context) error {
	var req updateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid update input")
	}

	if immutable := immutableFields(&req); len(immutable) > 0 {
		return domainerrors.ErrImmutableField.WithDetails(immutable)
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails([]usecase.FieldError{{Field: "id", Rule: "uuid"}})
	}

	input := usecase.UpdateDoctorInput{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	input.Normalize()
	if err := c.Validate(&input); err != nil {
		return err
	}

	detail, err := h.uc.Update(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// Deactivate handles the logical deletion of a doctor.
func (h *DoctorHandler) Deactivate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Deactivate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails([]usecase.FieldError{{Field: "id", Rule: "uuid"}})
	}

	return id, nil
}

func immutableFields(req *updateDoctorRequest) []usecase.FieldError {
	var fields []usecase.FieldError
	if req.CRM != nil {
		fields = append(fields, usecase.FieldError{Field: "crm", Rule: "immutable"})
	}
	if req.Specialty != nil {
		fields = append(fields, usecase.FieldError{Field: "specialty", Rule: "immutable"})
	}

	return fields
}

// bindPageRequest reads page, size, sort and direction. A direction inside sort
// ("name,desc") is overridden by an explicit direction parameter.
func bindPageRequest(c echo.Context) (entity.PageRequest, error) {
	req := entity.DefaultPageRequest()
	query := listDoctorsQuery{Page: req.Page, Size: req.Size}

	err := echo.QueryParamsBinder(c).
		Int("page", &query.Page).
		Int("size", &query.Size).
		String("sort", &query.Sort).
		String("direction", &query.Direction).
		BindError()
	if err != nil {
		return req, domainerrors.ErrInvalidPageRequest.WithDetails(err.Error())
	}

	req.Page = query.Page
	req.Size = query.Size
	if query.Sort != "" {
		req.Sort, req.Direction = entity.ParseSort(query.Sort)
	}
	if query.Direction != "" {
		_, req.Direction = entity.ParseSort("," + query.Direction)
	}

	return req, nil
}
