package documents

// Document certifies an artwork (authenticity papers, appraisals); its
// physical files live in DocumentFile rows.
type Document struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ArtworkID    uint   `gorm:"not null;index" json:"artwork_id"`
	DocumentType string `gorm:"not null" json:"document_type"`
	IssueDate    string `gorm:"type:date;not null" json:"issue_date"`
}

type DocumentFile struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	DocumentID uint   `gorm:"not null;index" json:"document_id"`
	FilePath   string `gorm:"not null" json:"file_path"`
	UploadDate string `gorm:"type:date;not null" json:"upload_date"`
}
