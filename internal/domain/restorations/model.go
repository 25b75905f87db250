package restorations

// ConditionInProgress is the sentinel condition_after value a
// restoration carries until it is completed.
const ConditionInProgress = "Restoration in progress"

type Restoration struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	ArtworkID       uint    `gorm:"not null;index" json:"artwork_id"`
	RestorerName    string  `gorm:"not null" json:"restorer_name"`
	StartDate       string  `gorm:"type:date;not null" json:"start_date"`
	EndDate         *string `gorm:"type:date" json:"end_date,omitempty"`
	Cost            float64 `json:"cost"`
	ConditionBefore string  `gorm:"type:text" json:"condition_before,omitempty"`
	ConditionAfter  string  `gorm:"type:text" json:"condition_after,omitempty"`
}

type Material struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// RestorationMaterial records material consumption, one row per
// (restoration, material) pair.
type RestorationMaterial struct {
	RestorationID uint `gorm:"primaryKey;autoIncrement:false" json:"restoration_id"`
	MaterialID    uint `gorm:"primaryKey;autoIncrement:false" json:"material_id"`
	QuantityUsed  int  `gorm:"not null" json:"quantity_used"`
}
