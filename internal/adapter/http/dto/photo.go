package dto

type PhotoUploadResponse struct {
	Success bool    `json:"success"`
	Photos  []Photo `json:"photos"`
}

type PhotoListResponse struct {
	Success bool    `json:"success"`
	Photos  []Photo `json:"photos"`
}
