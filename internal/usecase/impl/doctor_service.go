// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "voll/internal/delivery/context"
	"voll/internal/domain/entity"
	domainerrors "voll/internal/domain/errors"
	"voll/internal/domain/repository"
	"voll/internal/domain/service"
	"voll/internal/errors"
	"voll/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// doctorService implements the DoctorUsecase interface.
type doctorService struct {
	txManager  repository.TransactionManager
	doctorRepo repository.DoctorRepository
	publisher  service.EventPublisher
	metrics    service.RegistryMetrics
	validate   *validator.Validate
	logger     *slog.Logger
}

// DoctorServiceParams holds dependencies for DoctorService, injected by Fx.
type DoctorServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DoctorRepo repository.DoctorRepository
	Publisher  service.EventPublisher
	Metrics    service.RegistryMetrics
	Logger     *slog.Logger
}

// NewDoctorService is the constructor for doctorService.
func NewDoctorService(params DoctorServiceParams) usecase.DoctorUsecase {
	return &doctorService{
		txManager:  params.TxManager,
		doctorRepo: params.DoctorRepo,
		publisher:  params.Publisher,
		metrics:    params.Metrics,
		validate:   usecase.NewValidate(),
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *doctorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Register validates the input and stores a new active doctor.
func (srv *doctorService) Register(ctx context.Context, input *usecase.RegisterDoctorInput) (*usecase.DoctorDetail, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	in := *input
	in.Normalize()
	if err := srv.validate.StructCtx(ctx, &in); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(usecase.FieldErrors(err))
	}

	specialty, _ := entity.ParseSpecialty(in.Specialty)
	doctor := entity.NewDoctor(in.Name, in.Email, in.Phone, in.CRM, specialty, toAddress(in.Address))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewDoctorRepository().Create(ctx, doctor)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register doctor", slog.String("crm", doctor.CRM), slog.Any("error", err))

		return nil, translateRepoError(err, "failed to register doctor")
	}

	srv.log(ctx).Info("Doctor registered", slog.Any("doctorID", doctor.ID), slog.String("specialty", specialty.String()))
	srv.metrics.IncDoctorsRegistered(specialty.String())
	srv.publish(ctx, service.DoctorRegistered, doctor)

	return usecase.NewDoctorDetail(doctor), nil
}

// List returns one page of active doctors. A page past the end is empty, not an error.
func (srv *doctorService) List(ctx context.Context, req entity.PageRequest) (*entity.Page[*usecase.DoctorSummary], error) {
	if !req.IsValid() {
		return nil, domainerrors.ErrInvalidPageRequest.WithDetails(req)
	}

	var (
		doctors []*entity.Doctor
		total   int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		doctors, total, err = repoFactory.NewDoctorRepository().FindActive(ctx, req)

		return err
	})
	if err != nil {
		return nil, translateRepoError(err, "failed to list doctors")
	}

	summaries := make([]*usecase.DoctorSummary, 0, len(doctors))
	for _, d := range doctors {
		summaries = append(summaries, usecase.NewDoctorSummary(d))
	}

	return entity.NewPage(summaries, req, total), nil
}

// Get returns a doctor by ID regardless of its active flag.
func (srv *doctorService) Get(ctx context.Context, id uuid.UUID) (*usecase.DoctorDetail, error) {
	doctor, err := srv.doctorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get doctor")
	}

	return usecase.NewDoctorDetail(doctor), nil
}

// Update loads the doctor under a row lock, applies the provided fields and saves it.
func (srv *doctorService) Update(ctx context.Context, input *usecase.UpdateDoctorInput) (*usecase.DoctorDetail, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	in := *input
	in.Normalize()
	if err := srv.validate.StructCtx(ctx, &in); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(usecase.FieldErrors(err))
	}

	var updated *entity.Doctor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		doctorRepo := repoFactory.NewDoctorRepository()

		doctor, err := doctorRepo.FindByIDForUpdate(ctx, in.ID)
		if err != nil {
			return err
		}

		applyUpdate(doctor, &in)
		if err := doctorRepo.Update(ctx, doctor); err != nil {
			return err
		}
		updated = doctor

		return nil
	})
	if err != nil {
		return nil, translateRepoError(err, "failed to update doctor")
	}

	srv.log(ctx).Info("Doctor updated", slog.Any("doctorID", updated.ID))
	srv.metrics.IncDoctorsUpdated()
	srv.publish(ctx, service.DoctorUpdated, updated)

	return usecase.NewDoctorDetail(updated), nil
}

// Deactivate clears the active flag of a doctor. An inactive doctor is left as is.
func (srv *doctorService) Deactivate(ctx context.Context, id uuid.UUID) error {
	var (
		doctor  *entity.Doctor
		changed bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		doctorRepo := repoFactory.NewDoctorRepository()

		var err error
		doctor, err = doctorRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		changed = doctor.Deactivate()
		if !changed {
			return nil
		}

		return doctorRepo.Update(ctx, doctor)
	})
	if err != nil {
		return translateRepoError(err, "failed to deactivate doctor")
	}

	if !changed {
		srv.log(ctx).Debug("Doctor already inactive", slog.Any("doctorID", id))

		return nil
	}

	srv.log(ctx).Info("Doctor deactivated", slog.Any("doctorID", id))
	srv.metrics.IncDoctorsDeactivated()
	srv.publish(ctx, service.DoctorDeactivated, doctor)

	return nil
}

// publish sends a lifecycle event for a committed change. Failures are logged only.
func (srv *doctorService) publish(ctx context.Context, eventType service.DoctorEventType, doctor *entity.Doctor) {
	event := &service.DoctorEvent{
		RequestID:  deliverycontext.RequestID(ctx),
		Type:       eventType,
		DoctorID:   doctor.ID.String(),
		CRM:        doctor.CRM,
		Specialty:  doctor.Specialty.String(),
		Active:     doctor.Active,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishDoctorEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish doctor event",
			slog.String("type", string(eventType)),
			slog.Any("doctorID", doctor.ID),
			slog.Any("error", err),
		)
	}
}

// translateRepoError maps repository sentinels onto the domain error taxonomy.
func translateRepoError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrDoctorNotFound):
		return domainerrors.ErrDoctorNotFound
	case errors.Is(err, repository.ErrDuplicateDoctor):
		return domainerrors.ErrDoctorAlreadyExists
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, message)
}

// applyUpdate copies the present fields of a normalized input onto the doctor.
func applyUpdate(doctor *entity.Doctor, input *usecase.UpdateDoctorInput) {
	if input.Name != nil {
		doctor.Name = *input.Name
	}
	if input.Email != nil {
		doctor.Email = *input.Email
	}
	if input.Phone != nil {
		doctor.Phone = *input.Phone
	}
	if input.Address != nil {
		doctor.Address = doctor.Address.Merge(&entity.AddressPatch{
			Street:     input.Address.Street,
			District:   input.Address.District,
			ZipCode:    input.Address.ZipCode,
			City:       input.Address.City,
			State:      input.Address.State,
			Number:     input.Address.Number,
			Complement: input.Address.Complement,
		})
	}
}

func toAddress(in usecase.AddressInput) entity.Address {
	return entity.Address{
		Street:     in.Street,
		District:   in.District,
		ZipCode:    in.ZipCode,
		City:       in.City,
		State:      in.State,
		Number:     in.Number,
		Complement: in.Complement,
	}
}
