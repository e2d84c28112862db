package usecase

import (
	"context"
	"errors"
	"strings"

	"cotacao_service/internal/domain/entities"
	"cotacao_service/internal/usecase/interfaces"
)

// MaxDocumentSize caps direct uploads at 10MB, mirroring the limit the
// surrounding UI enforces.
const MaxDocumentSize = 10 << 20

// AllowedDocumentType is the single document format accepted for quotation
// and registration attachments.
const AllowedDocumentType = "application/pdf"

var (
	ErrMissingFileName     = errors.New("missing file name")
	ErrInvalidDocumentType = errors.New("document type not allowed")
	ErrDocumentTooLarge    = errors.New("document exceeds the size limit")
)

// IUploadUseCase hands out direct-upload targets and read URLs. The size and
// content-type constraints are re-validated here, server-side, instead of
// trusting the UI alone.

type IUploadUseCase interface {
	GenerateUploadTarget(ctx context.Context, actor entities.Actor, fileName, contentType string, size int64) (interfaces.UploadTarget, error)
	DownloadURL(ctx context.Context, actor entities.Actor, storageRef string) (string, error)
}

type UploadUseCase struct {
	storage interfaces.IFileStorage
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

func NewUploadUseCase(storage interfaces.IFileStorage) *UploadUseCase {
	return &UploadUseCase{storage: storage}
}

func (u *UploadUseCase) GenerateUploadTarget(ctx context.Context, actor entities.Actor, fileName, contentType string, size int64) (interfaces.UploadTarget, error) {
	if err := validateActor(actor); err != nil {
		return interfaces.UploadTarget{}, err
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return interfaces.UploadTarget{}, ErrMissingFileName
	}
	if !strings.EqualFold(strings.TrimSpace(contentType), AllowedDocumentType) {
		return interfaces.UploadTarget{}, ErrInvalidDocumentType
	}
	if size <= 0 || size > MaxDocumentSize {
		return interfaces.UploadTarget{}, ErrDocumentTooLarge
	}
	return u.storage.GenerateUploadTarget(ctx, fileName, AllowedDocumentType, size)
}

func (u *UploadUseCase) DownloadURL(ctx context.Context, actor entities.Actor, storageRef string) (string, error) {
	if err := validateActor(actor); err != nil {
		return "", err
	}
	storageRef = strings.TrimSpace(storageRef)
	if storageRef == "" {
		return "", ErrUploadFailed
	}
	return u.storage.DownloadURL(ctx, storageRef)
}
