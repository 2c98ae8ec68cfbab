package member

// Member is a signed-up user. Only the password hash is kept.
type Member struct {
	id           int64
	name         Name
	email        Email
	passwordHash string
}

func NewMember(name Name, email Email, passwordHash string) *Member {
	return &Member{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}
}

func ReconstructMember(id int64, name Name, email Email, passwordHash string) *Member {
	return &Member{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}
}

func (m *Member) WithID(id int64) *Member {
	return ReconstructMember(id, m.name, m.email, m.passwordHash)
}

func (m *Member) ID() int64            { return m.id }
func (m *Member) Name() Name           { return m.name }
func (m *Member) Email() Email         { return m.email }
func (m *Member) PasswordHash() string { return m.passwordHash }
