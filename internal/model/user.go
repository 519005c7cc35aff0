package model

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Username string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	FullName string   `gorm:"size:255" json:"fullName"`
	Role     UserRole `gorm:"size:20;default:'user'" json:"role"`
	// 仅在 demo 密码模式下使用，明文存储，绝不输出
	Password string `gorm:"size:255" json:"-"`
}

func (User) TableName() string {
	return "users"
}
