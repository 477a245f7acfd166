package postgres

import (
	"context"
	"time"

	"voll/internal/domain/entity"
	domainerrors "voll/internal/domain/errors"
	"voll/internal/domain/repository"
	"voll/internal/errors"
	"voll/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns whitelists the columns a listing may be ordered by.
var sortColumns = map[entity.SortField]string{
	entity.SortByName:      "name",
	entity.SortByEmail:     "email",
	entity.SortByCRM:       "crm",
	entity.SortBySpecialty: "specialty",
}

// doctorRepository implements the domain.DoctorRepository interface using GORM.
type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository is the constructor for doctorRepository.
// The given *gorm.DB may be a transaction handle.
func NewDoctorRepository(db *gorm.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

// Create persists a new doctor. A nil ID is replaced with a fresh UUIDv7.
func (repo *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	if doctor.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate doctor id")
		}
		doctor.ID = id
	}

	doctorM := fromDoctorDomain(doctor)
	if err := repo.db.WithContext(ctx).Create(doctorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrDuplicateDoctor, "constraint %q", constraintName(err))
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("doctor violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create doctor")
	}

	doctor.CreatedAt = doctorM.CreatedAt
	doctor.UpdatedAt = doctorM.UpdatedAt

	return nil
}

// FindByID retrieves a doctor by ID, active or not.
func (repo *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a doctor by ID and locks its row until the transaction ends.
func (repo *doctorRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *doctorRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctorM model.DoctorModel
	if err := db.Where("id = ?", id).First(&doctorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDoctorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find doctor by id")
	}

	return toDoctorDomain(&doctorM), nil
}

// FindActive returns one page of active doctors ordered by the requested column,
// with id as the tiebreaker, and the total count of active doctors.
func (repo *doctorRepository) FindActive(ctx context.Context, req entity.PageRequest) ([]*entity.Doctor, int64, error) {
	column, ok := sortColumns[req.Sort]
	if !ok {
		return nil, 0, errors.Wrapf(domainerrors.ErrInvalidPageRequest, "unsupported sort field %q", req.Sort)
	}

	var total int64
	if err := repo.activeDoctors(ctx).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count active doctors")
	}
	// Offset saturates, so any offset that gets past this check fits in an int.
	if total == 0 || req.Offset() >= total {
		return []*entity.Doctor{}, total, nil
	}

	var doctorMs []model.DoctorModel
	err := repo.activeDoctors(ctx).
		Order(orderByColumn(column, req.Desc())).
		Limit(req.Size).
		Offset(int(req.Offset())).
		Find(&doctorMs).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list active doctors")
	}

	doctors := make([]*entity.Doctor, 0, len(doctorMs))
	for i := range doctorMs {
		doctors = append(doctors, toDoctorDomain(&doctorMs[i]))
	}

	return doctors, total, nil
}

// orderByColumn orders by column under the "C" collation, so text compares byte by byte
// whatever the database locale, then by id for a total order.
func orderByColumn(column string, desc bool) clause.OrderBy {
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	return clause.OrderBy{Expression: clause.Expr{
		SQL:  `? COLLATE "C" ` + direction + `, ? ` + direction,
		Vars: []any{clause.Column{Name: column}, clause.Column{Name: "id"}},
	}}
}

func (repo *doctorRepository) activeDoctors(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.DoctorModel{}).Where("active = ?", true)
}

// Update writes the mutable columns of an existing doctor. CRM and specialty are left untouched.
func (repo *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	now := time.Now().UTC()
	result := repo.db.WithContext(ctx).
		Model(&model.DoctorModel{}).
		Where("id = ?", doctor.ID).
		Updates(map[string]any{
			"name":               doctor.Name,
			"email":              doctor.Email,
			"phone":              doctor.Phone,
			"address_street":     doctor.Address.Street,
			"address_district":   doctor.Address.District,
			"address_zip_code":   doctor.Address.ZipCode,
			"address_city":       doctor.Address.City,
			"address_state":      doctor.Address.State,
			"address_number":     doctor.Address.Number,
			"address_complement": doctor.Address.Complement,
			"active":             doctor.Active,
			"updated_at":         now,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrDuplicateDoctor, "constraint %q", constraintName(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update doctor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDoctorNotFound
	}

	doctor.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toDoctorDomain(data *model.DoctorModel) *entity.Doctor {
	if data == nil {
		return nil
	}

	return &entity.Doctor{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		CRM:       data.CRM,
		Specialty: entity.Specialty(data.Specialty),
		Address: entity.Address{
			Street:     data.Address.Street,
			District:   data.Address.District,
			ZipCode:    data.Address.ZipCode,
			City:       data.Address.City,
			State:      data.Address.State,
			Number:     data.Address.Number,
			Complement: data.Address.Complement,
		},
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDoctorDomain(data *entity.Doctor) *model.DoctorModel {
	if data == nil {
		return nil
	}

	return &model.DoctorModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		CRM:       data.CRM,
		Specialty: data.Specialty.String(),
		Address: model.AddressColumns{
			Street:     data.Address.Street,
			District:   data.Address.District,
			ZipCode:    data.Address.ZipCode,
			City:       data.Address.City,
			State:      data.Address.State,
			Number:     data.Address.Number,
			Complement: data.Address.Complement,
		},
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
