package requests

type UploadRecord struct {
	RecordType  string `json:"record_type" validate:"omitempty,max=50"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	RecordDate  string `json:"record_date" validate:"omitempty"`

	FileName          string `json:"file_name" validate:"omitempty,max=255"`
	FileType          string `json:"file_type" validate:"omitempty,max=100"`
	FileContentBase64 string `json:"file_content" validate:"omitempty"`
}

type UpdateRecord struct {
	RecordType  string `json:"record_type" validate:"omitempty,max=50"`
	Title       string `json:"title" validate:"omitempty,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	RecordDate  string `json:"record_date" validate:"omitempty"`
}

type VerifyRecord struct {
	Status        string `json:"status" validate:"required"`
	Notes         string `json:"notes" validate:"omitempty,max=5000"`
	RequestedInfo string `json:"requested_info" validate:"omitempty,max=5000"`
}
