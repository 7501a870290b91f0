package model

type Operator struct {
	ID           int64  `gorm:"column:id;primaryKey" json:"id"`
	OperatorName string `gorm:"column:operator_name;size:255" json:"operatorName"`
}

func (Operator) TableName() string { return "operators" }

type Well struct {
	ID         string  `gorm:"column:id;primaryKey;size:64" json:"id"`
	WellName   string  `gorm:"column:well_name;size:255" json:"wellName"`
	Longitude  float64 `gorm:"column:longitude" json:"longitude"`
	Latitude   float64 `gorm:"column:latitude" json:"latitude"`
	OperatorID int64   `gorm:"column:operator_id" json:"operatorId"`
}

func (Well) TableName() string { return "wells" }

// Survey is one station of a directional survey. MD/TVD in ft, Inc/Azm in
// degrees, DLS in °/100ft.
type Survey struct {
	ID      string  `gorm:"column:id;primaryKey;size:36" json:"id"`
	WellID  string  `gorm:"column:well_id;size:64;index" json:"wellId"`
	Survey  int     `gorm:"column:survey" json:"survey"`
	MD      float64 `gorm:"column:md" json:"md"`
	Inc     float64 `gorm:"column:inc" json:"inc"`
	Azm     float64 `gorm:"column:azm" json:"azm"`
	B       float64 `gorm:"column:b" json:"b"`
	RF      float64 `gorm:"column:rf" json:"rf"`
	NS      float64 `gorm:"column:ns" json:"ns"`
	EW      float64 `gorm:"column:ew" json:"ew"`
	TVD     float64 `gorm:"column:tvd" json:"tvd"`
	DLS     float64 `gorm:"column:dls" json:"dls"`
	Stepout float64 `gorm:"column:stepout" json:"stepout"`
}

func (Survey) TableName() string { return "surveys" }
