package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/manikandan032/plant-disease-detection/internal/adapter/api"
	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
)

// DetectionService submits plant images for diagnosis and reads back the
// scan history.
type DetectionService interface {
	DiagnoseFile(ctx context.Context, path string) (*entity.Diagnosis, error)
	History(ctx context.Context) ([]entity.ScanRecord, error)
}

type detectionService struct {
	client *api.Client
	log    logger.Logger
}

func NewDetectionService(client *api.Client, log logger.Logger) DetectionService {
	return &detectionService{client: client, log: log}
}

func (s *detectionService) DiagnoseFile(ctx context.Context, path string) (*entity.Diagnosis, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %s: %w", path, err)
	}
	defer file.Close()

	diagnosis, err := s.client.UploadScan(ctx, filepath.Base(path), file)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	s.log.Infof("Diagnosis: %s (confidence %.0f%%)", diagnosis.DiseaseName, diagnosis.Confidence*100)
	return diagnosis, nil
}

func (s *detectionService) History(ctx context.Context) ([]entity.ScanRecord, error) {
	history, err := s.client.ScanHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load scan history: %w", err)
	}
	return history, nil
}
