package service

import (
	"context"
	"strconv"
	"time"

	"github.com/betrybe/agrix/internal/core/domain"
)

// In-memory repository stubs shared by the service tests.

type stubPersonRepo struct {
	persons map[string]*domain.Person
	findErr error
}

func newStubPersonRepo() *stubPersonRepo {
	return &stubPersonRepo{persons: map[string]*domain.Person{}}
}

func (r *stubPersonRepo) FindByUsername(_ context.Context, username string) (*domain.Person, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	p, ok := r.persons[username]
	if !ok {
		return nil, domain.ErrPersonNotFound
	}
	return p, nil
}

func (r *stubPersonRepo) Create(_ context.Context, person *domain.Person) (*domain.Person, error) {
	if _, ok := r.persons[person.Username]; ok {
		return nil, domain.ErrPersonExists
	}
	stored := *person
	stored.ID = strconv.Itoa(len(r.persons) + 1)
	r.persons[person.Username] = &stored
	return &stored, nil
}

type stubFarmRepo struct {
	farms map[string]*domain.Farm
}

func newStubFarmRepo() *stubFarmRepo {
	return &stubFarmRepo{farms: map[string]*domain.Farm{}}
}

func (r *stubFarmRepo) Create(_ context.Context, farm *domain.Farm) (*domain.Farm, error) {
	stored := *farm
	stored.ID = strconv.Itoa(len(r.farms) + 1)
	r.farms[stored.ID] = &stored
	return &stored, nil
}

func (r *stubFarmRepo) FindByID(_ context.Context, id string) (*domain.Farm, error) {
	f, ok := r.farms[id]
	if !ok {
		return nil, domain.ErrFarmNotFound
	}
	return f, nil
}

func (r *stubFarmRepo) FindAll(_ context.Context) ([]*domain.Farm, error) {
	out := make([]*domain.Farm, 0, len(r.farms))
	for _, f := range r.farms {
		out = append(out, f)
	}
	return out, nil
}

type stubCropRepo struct {
	crops map[string]*domain.Crop
}

func newStubCropRepo() *stubCropRepo {
	return &stubCropRepo{crops: map[string]*domain.Crop{}}
}

func (r *stubCropRepo) Create(_ context.Context, crop *domain.Crop) (*domain.Crop, error) {
	stored := *crop
	stored.ID = strconv.Itoa(len(r.crops) + 1)
	r.crops[stored.ID] = &stored
	return &stored, nil
}

func (r *stubCropRepo) FindByID(_ context.Context, id string) (*domain.Crop, error) {
	c, ok := r.crops[id]
	if !ok {
		return nil, domain.ErrCropNotFound
	}
	return c, nil
}

func (r *stubCropRepo) FindAll(_ context.Context) ([]*domain.Crop, error) {
	out := make([]*domain.Crop, 0, len(r.crops))
	for _, c := range r.crops {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCropRepo) FindByFarmID(_ context.Context, farmID string) ([]*domain.Crop, error) {
	out := []*domain.Crop{}
	for _, c := range r.crops {
		if c.FarmID == farmID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCropRepo) FindByHarvestBetween(_ context.Context, start, end time.Time) ([]*domain.Crop, error) {
	out := []*domain.Crop{}
	for _, c := range r.crops {
		if c.HarvestDate.After(start) && c.HarvestDate.Before(end) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCropRepo) AddFertilizer(_ context.Context, cropID, fertilizerID string) error {
	c, ok := r.crops[cropID]
	if !ok {
		return domain.ErrCropNotFound
	}
	for _, id := range c.FertilizerIDs {
		if id == fertilizerID {
			return nil
		}
	}
	c.FertilizerIDs = append(c.FertilizerIDs, fertilizerID)
	return nil
}

type stubFertilizerRepo struct {
	fertilizers map[string]*domain.Fertilizer
}

func newStubFertilizerRepo() *stubFertilizerRepo {
	return &stubFertilizerRepo{fertilizers: map[string]*domain.Fertilizer{}}
}

func (r *stubFertilizerRepo) Create(_ context.Context, fertilizer *domain.Fertilizer) (*domain.Fertilizer, error) {
	stored := *fertilizer
	stored.ID = strconv.Itoa(len(r.fertilizers) + 1)
	r.fertilizers[stored.ID] = &stored
	return &stored, nil
}

func (r *stubFertilizerRepo) FindByID(_ context.Context, id string) (*domain.Fertilizer, error) {
	f, ok := r.fertilizers[id]
	if !ok {
		return nil, domain.ErrFertilizerNotFound
	}
	return f, nil
}

func (r *stubFertilizerRepo) FindAll(_ context.Context) ([]*domain.Fertilizer, error) {
	out := make([]*domain.Fertilizer, 0, len(r.fertilizers))
	for _, f := range r.fertilizers {
		out = append(out, f)
	}
	return out, nil
}

func (r *stubFertilizerRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Fertilizer, error) {
	out := []*domain.Fertilizer{}
	for _, id := range ids {
		if f, ok := r.fertilizers[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

// stubLimiter returns its configured error on every Allow call.
type stubLimiter struct {
	err   error
	calls int
}

func (l *stubLimiter) Allow(_ context.Context, _, _ string) error {
	l.calls++
	return l.err
}
