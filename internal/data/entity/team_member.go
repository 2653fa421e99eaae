package entity

type TeamMemberStatus string

const (
	TeamMemberStatusActive   TeamMemberStatus = "active"
	TeamMemberStatusInactive TeamMemberStatus = "inactive"
)

type TeamMember struct {
	Base        `bson:",inline"`
	Name        string           `bson:"name"`
	Email       string           `bson:"email"`
	Phone       string           `bson:"phone"`
	Role        string           `bson:"role"`
	Permissions []string         `bson:"permissions"`
	Status      TeamMemberStatus `bson:"status"`
}
