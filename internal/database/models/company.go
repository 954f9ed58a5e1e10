package models

// Company is the tenant root. Every domain entity transitively belongs to
// exactly one company; name is stored lower-cased and unique.
type Company struct {
	BaseModel
	Name         string `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,min=1,max=200"`
	Description  string `json:"description" gorm:"type:text"`
	IsSubscribed bool   `json:"is_subscribed" gorm:"default:false"`

	Users []User `json:"users,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
