package domain

type LawyerProfile struct {
	ID             int
	Name           string
	Specialization string
	Bio            string
	Email          string
}

type LegalHelpRole string

const (
	RoleConsultant LegalHelpRole = "Consultant"
	RoleHelper     LegalHelpRole = "Helper"
)

type LegalHelpProfile struct {
	ID        int
	Name      string
	Role      LegalHelpRole
	Expertise []string
	Bio       string
	Email     string
	Rate      int
}
