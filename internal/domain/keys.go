package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserType  CtxKey = "UserType"
)

// Actor identifies the authenticated caller of a usecase. UserType is empty
// until the user creates a profile.
type Actor struct {
	UserID   string
	Email    string
	UserType string
}

func (a Actor) IsCandidate() bool { return a.UserType == UserTypeCandidate }
func (a Actor) IsCompany() bool   { return a.UserType == UserTypeCompany }
