package response

type UploadTargetResponse struct {
	UploadURL  string `json:"upload_url"`
	StorageRef string `json:"storage_ref"`
}

type DownloadURLResponse struct {
	URL string `json:"url"`
}
