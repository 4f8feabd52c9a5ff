package repository

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Book struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"type:varchar(255)"`
	Author   string `gorm:"type:varchar(255)"`
	ImageURL string `gorm:"type:varchar(255)"`
}
