package dto

type CreateReportRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=session message buddy user"`
	ContentID   string `json:"content_id" validate:"required"`
	Reason      string `json:"reason" validate:"required,max=500"`
	Urgent      bool   `json:"urgent"`
}

type ActionReportRequest struct {
	Status    string `json:"status" validate:"required,oneof=reviewed actioned dismissed"`
	AdminNote string `json:"admin_note"`
}
