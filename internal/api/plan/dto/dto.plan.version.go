package plandto

// VersionCreateInput đầu vào khi tạo phiên bản mới cho một sơ đồ tầng.
type VersionCreateInput struct {
	File              *FileMetaInput `json:"file,omitempty"`
	ChangeDescription string         `json:"changeDescription,omitempty" validate:"omitempty,no_xss"`
}

// VersionStatusInput đầu vào khi chuyển trạng thái một phiên bản.
type VersionStatusInput struct {
	Status            string `json:"status" validate:"required,oneof=Draft 'In Review' 'Ready For Publish' Published Archived"`
	ChangeDescription string `json:"changeDescription,omitempty" validate:"omitempty,no_xss"`
}

// VersionUpdateInput đầu vào khi cập nhật nội dung một phiên bản chưa kết thúc.
type VersionUpdateInput struct {
	File              *FileMetaInput `json:"file,omitempty"`
	ChangeDescription string         `json:"changeDescription,omitempty" validate:"omitempty,no_xss"`
}
