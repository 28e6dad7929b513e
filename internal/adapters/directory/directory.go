// Package directory serves the static lawyer and legal-help listings
// bundled with the binary.
package directory

import (
	_ "embed"
	"fmt"

	"github.com/nileshvk/adhikar/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

//go:embed lawyers.toml
var lawyersData []byte

//go:embed legal_help.toml
var legalHelpData []byte

type lawyerSchema struct {
	ID             int    `toml:"id"`
	Name           string `toml:"name"`
	Specialization string `toml:"specialization"`
	Bio            string `toml:"bio"`
	Email          string `toml:"email"`
}

type legalHelpSchema struct {
	ID        int      `toml:"id"`
	Name      string   `toml:"name"`
	Role      string   `toml:"role"`
	Expertise []string `toml:"expertise"`
	Bio       string   `toml:"bio"`
	Email     string   `toml:"email"`
	Rate      int      `toml:"rate"`
}

func Lawyers() ([]domain.LawyerProfile, error) {
	var file struct {
		Lawyers []lawyerSchema `toml:"lawyers"`
	}
	if err := toml.Unmarshal(lawyersData, &file); err != nil {
		return nil, fmt.Errorf("decode lawyer directory: %w", err)
	}

	profiles := make([]domain.LawyerProfile, 0, len(file.Lawyers))
	for _, entry := range file.Lawyers {
		profiles = append(profiles, domain.LawyerProfile{
			ID:             entry.ID,
			Name:           entry.Name,
			Specialization: entry.Specialization,
			Bio:            entry.Bio,
			Email:          entry.Email,
		})
	}

	return profiles, nil
}

func LegalHelp() ([]domain.LegalHelpProfile, error) {
	var file struct {
		Profiles []legalHelpSchema `toml:"profiles"`
	}
	if err := toml.Unmarshal(legalHelpData, &file); err != nil {
		return nil, fmt.Errorf("decode legal help directory: %w", err)
	}

	profiles := make([]domain.LegalHelpProfile, 0, len(file.Profiles))
	for _, entry := range file.Profiles {
		profiles = append(profiles, domain.LegalHelpProfile{
			ID:        entry.ID,
			Name:      entry.Name,
			Role:      domain.LegalHelpRole(entry.Role),
			Expertise: entry.Expertise,
			Bio:       entry.Bio,
			Email:     entry.Email,
			Rate:      entry.Rate,
		})
	}

	return profiles, nil
}
