package interfaces

import "context"

// UploadTarget is a short-lived destination for a direct client upload.
// StorageRef is the reference callers hand back when attaching the document.
type UploadTarget struct {
	UploadURL  string `json:"upload_url"`
	StorageRef string `json:"storage_ref"`
}

// IFileStorage abstracts the blob storage collaborator (S3).
//
// The response flow depends on Exists: a document reference is only committed
// to a quotation after the storage confirms the object is really there, so an
// aborted upload never leaves a responded quotation with a broken attachment.

type IFileStorage interface {
	GenerateUploadTarget(ctx context.Context, fileName, contentType string, size int64) (UploadTarget, error)
	Exists(ctx context.Context, storageRef string) (bool, error)
	DownloadURL(ctx context.Context, storageRef string) (string, error)
}
