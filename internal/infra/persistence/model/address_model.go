package model

// AddressColumns is embedded into owning tables with an "address_" column prefix.
type AddressColumns struct {
	Street     string `gorm:"type:varchar(255);not null"`
	District   string `gorm:"type:varchar(100);not null"`
	ZipCode    string `gorm:"type:char(8);not null"`
	City       string `gorm:"type:varchar(100);not null"`
	State      string `gorm:"type:char(2);not null"`
	Number     string `gorm:"type:varchar(20)"`
	Complement string `gorm:"type:varchar(100)"`
}
