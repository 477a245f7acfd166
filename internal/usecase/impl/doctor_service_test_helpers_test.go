package impl

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"voll/internal/domain/entity"
	"voll/internal/domain/repository"
	"voll/internal/domain/service"
	"voll/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testTxManager runs the callback directly against a fixed factory.
type testTxManager struct {
	factory repository.RepositoryFactory
}

func (tm *testTxManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

type testRepoFactory struct {
	doctorRepo repository.DoctorRepository
}

func (f *testRepoFactory) NewDoctorRepository() repository.DoctorRepository {
	return f.doctorRepo
}

// memDoctorRepo is an in-memory DoctorRepository with the same uniqueness and ordering rules as the SQL one.
type memDoctorRepo struct {
	mu      sync.Mutex
	doctors map[uuid.UUID]entity.Doctor
}

func newMemDoctorRepo() *memDoctorRepo {
	return &memDoctorRepo{doctors: make(map[uuid.UUID]entity.Doctor)}
}

func (r *memDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.doctors {
		if d.Email == doctor.Email || d.CRM == doctor.CRM {
			return repository.ErrDuplicateDoctor
		}
	}
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.Must(uuid.NewV7())
	}
	r.doctors[doctor.ID] = *doctor

	return nil
}

func (r *memDoctorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.doctors[id]
	if !ok {
		return nil, repository.ErrDoctorNotFound
	}

	return &d, nil
}

func (r *memDoctorRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return r.FindByID(ctx, id)
}

func (r *memDoctorRepo) FindActive(_ context.Context, req entity.PageRequest) ([]*entity.Doctor, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := make([]entity.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		if d.Active {
			active = append(active, d)
		}
	}

	key := func(d entity.Doctor) string {
		switch req.Sort {
		case entity.SortByEmail:
			return d.Email
		case entity.SortByCRM:
			return d.CRM
		case entity.SortBySpecialty:
			return d.Specialty.String()
		default:
			return d.Name
		}
	}
	slices.SortFunc(active, func(a, b entity.Doctor) int {
		c := cmp.Or(cmp.Compare(key(a), key(b)), cmp.Compare(a.ID.String(), b.ID.String()))
		if req.Desc() {
			return -c
		}

		return c
	})

	total := int64(len(active))
	start := int(min(req.Offset(), total))
	end := min(start+req.Size, len(active))

	page := make([]*entity.Doctor, 0, end-start)
	for i := start; i < end; i++ {
		d := active[i]
		page = append(page, &d)
	}

	return page, total, nil
}

func (r *memDoctorRepo) Update(_ context.Context, doctor *entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.doctors[doctor.ID]
	if !ok {
		return repository.ErrDoctorNotFound
	}
	stored.Name = doctor.Name
	stored.Email = doctor.Email
	stored.Phone = doctor.Phone
	stored.Address = doctor.Address
	stored.Active = doctor.Active
	r.doctors[doctor.ID] = stored

	return nil
}

func (r *memDoctorRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.doctors)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.DoctorEvent
	err    error
}

func (p *recordingPublisher) PublishDoctorEvent(_ context.Context, event *service.DoctorEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) types() []service.DoctorEventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]service.DoctorEventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}

	return types
}

type countingMetrics struct {
	registered  map[string]int
	updated     int
	deactivated int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{registered: make(map[string]int)}
}

func (m *countingMetrics) IncDoctorsRegistered(specialty string) { m.registered[specialty]++ }
func (m *countingMetrics) IncDoctorsUpdated()                     { m.updated++ }
func (m *countingMetrics) IncDoctorsDeactivated()                 { m.deactivated++ }

type doctorServiceFixtures struct {
	service   usecase.DoctorUsecase
	repo      *memDoctorRepo
	publisher *recordingPublisher
	metrics   *countingMetrics
}

func createTestDoctorService() doctorServiceFixtures {
	repo := newMemDoctorRepo()
	publisher := &recordingPublisher{}
	metrics := newCountingMetrics()

	svc := NewDoctorService(DoctorServiceParams{
		TxManager:  &testTxManager{factory: &testRepoFactory{doctorRepo: repo}},
		DoctorRepo: repo,
		Publisher:  publisher,
		Metrics:    metrics,
		Logger:     newDiscardLogger(),
	})

	return doctorServiceFixtures{
		service:   svc,
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
	}
}

func validRegisterInput(name, email, crm string, specialty entity.Specialty) *usecase.RegisterDoctorInput {
	return &usecase.RegisterDoctorInput{
		Name:      name,
		Email:     email,
		Phone:     "61999998888",
		CRM:       crm,
		Specialty: specialty.String(),
		Address: usecase.AddressInput{
			Street:   "Rua XPTO",
			District: "Bairro",
			ZipCode:  "12345678",
			City:     "Brasilia",
			State:    "df",
			Number:   "1",
		},
	}
}

func strPtr(s string) *string {
	return &s
}
