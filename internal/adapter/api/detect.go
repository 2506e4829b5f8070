package api

import (
	"context"
	"io"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
)

// UploadScan submits a plant image for diagnosis.
func (c *Client) UploadScan(ctx context.Context, filename string, file io.Reader) (*entity.Diagnosis, error) {
	var diagnosis entity.Diagnosis
	if err := c.doMultipart(ctx, "/detect/upload", filename, file, &diagnosis); err != nil {
		return nil, err
	}
	return &diagnosis, nil
}

func (c *Client) ScanHistory(ctx context.Context) ([]entity.ScanRecord, error) {
	var history []entity.ScanRecord
	if err := c.get(ctx, "/detect/history", &history); err != nil {
		return nil, err
	}
	return history, nil
}
