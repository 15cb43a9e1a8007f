package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/betrybe/agrix/internal/core/domain"
	"github.com/betrybe/agrix/internal/core/ports"
)

func TestFarmService_CreateAndGet(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), newStubCropRepo(), zerolog.Nop())

	farm, err := svc.CreateFarm(context.Background(), ports.FarmInput{Name: "Fazenda Boa Vista", Size: 42.5})
	if err != nil {
		t.Fatalf("create farm failed: %v", err)
	}
	if farm.ID == "" {
		t.Fatal("expected a generated id")
	}

	got, err := svc.GetFarmByID(context.Background(), farm.ID)
	if err != nil {
		t.Fatalf("get farm failed: %v", err)
	}
	if got.Name != "Fazenda Boa Vista" || got.Size != 42.5 {
		t.Fatalf("unexpected farm: %+v", got)
	}

	all, err := svc.GetFarms(context.Background())
	if err != nil {
		t.Fatalf("list farms failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 farm, got %d", len(all))
	}
}

func TestFarmService_GetFarmByID_NotFound(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), newStubCropRepo(), zerolog.Nop())

	_, err := svc.GetFarmByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrFarmNotFound) {
		t.Fatalf("expected ErrFarmNotFound, got %v", err)
	}
}

func TestFarmService_CreateCrop(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), newStubCropRepo(), zerolog.Nop())

	farm, err := svc.CreateFarm(context.Background(), ports.FarmInput{Name: "Sitio Alegre", Size: 10})
	if err != nil {
		t.Fatalf("create farm failed: %v", err)
	}

	planted := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	harvest := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	crop, err := svc.CreateCrop(context.Background(), farm.ID, ports.CropInput{
		Name:        "Couve-flor",
		PlantedArea: 5.43,
		PlantedDate: planted,
		HarvestDate: harvest,
	})
	if err != nil {
		t.Fatalf("create crop failed: %v", err)
	}
	if crop.FarmID != farm.ID {
		t.Fatalf("crop bound to wrong farm: %q", crop.FarmID)
	}

	crops, err := svc.GetCropsFromFarm(context.Background(), farm.ID)
	if err != nil {
		t.Fatalf("list crops failed: %v", err)
	}
	if len(crops) != 1 || crops[0].Name != "Couve-flor" {
		t.Fatalf("unexpected crops: %+v", crops)
	}
}

func TestFarmService_CreateCrop_FarmNotFound(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), newStubCropRepo(), zerolog.Nop())

	_, err := svc.CreateCrop(context.Background(), "missing", ports.CropInput{Name: "Milho"})
	if !errors.Is(err, domain.ErrFarmNotFound) {
		t.Fatalf("expected ErrFarmNotFound, got %v", err)
	}
}

func TestFarmService_GetCropsFromFarm_EmptyFarm(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), newStubCropRepo(), zerolog.Nop())

	farm, err := svc.CreateFarm(context.Background(), ports.FarmInput{Name: "Nova", Size: 1})
	if err != nil {
		t.Fatalf("create farm failed: %v", err)
	}

	crops, err := svc.GetCropsFromFarm(context.Background(), farm.ID)
	if err != nil {
		t.Fatalf("empty farm must list successfully: %v", err)
	}
	if len(crops) != 0 {
		t.Fatalf("expected no crops, got %d", len(crops))
	}
}

func TestFarmService_GetCropsFromFarm_FarmNotFound(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), newStubCropRepo(), zerolog.Nop())

	_, err := svc.GetCropsFromFarm(context.Background(), "missing")
	if !errors.Is(err, domain.ErrFarmNotFound) {
		t.Fatalf("expected ErrFarmNotFound, got %v", err)
	}
}
