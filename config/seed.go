package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/models"
	"github.com/DiyaJain6/Task-Bridge/store"
	"github.com/DiyaJain6/Task-Bridge/utils"
)

type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// DefaultSeedUsers is the base trio every fresh install gets.
func DefaultSeedUsers() []SeedUser {
	return []SeedUser{
		{Name: "System Admin", Email: "admin@test.com", Password: "password", Role: constants.RoleAdmin},
		{Name: "Lead Manager", Email: "manager@test.com", Password: "password", Role: constants.RoleManager},
		{Name: "Standard Employee", Email: "worker@test.com", Password: "password", Role: constants.RoleWorker},
	}
}

// LoadSeedUsers reads seed users from a YAML file, falling back to the
// defaults when no path is configured.
func LoadSeedUsers(path string) ([]SeedUser, error) {
	if path == "" {
		return DefaultSeedUsers(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	var seeds []SeedUser
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return seeds, nil
}

// SeedUsers creates any seed user that does not already exist. Idempotent.
func SeedUsers(users store.UserStore, seeds []SeedUser) error {
	for _, s := range seeds {
		email := utils.NormalizeEmail(s.Email)
		if !constants.ValidRole(s.Role) {
			return fmt.Errorf("seed user %s has unknown role %q", email, s.Role)
		}
		_, err := users.ByEmail(email)
		if err == nil {
			log.Printf("User already exists, skipping seed: %s", email)
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		hashed, err := utils.HashPassword(s.Password)
		if err != nil {
			return err
		}
		u := models.User{
			Name:      s.Name,
			Email:     email,
			Password:  hashed,
			Role:      s.Role,
			Available: true,
		}
		if err := users.Save(&u); err != nil {
			return err
		}
		log.Printf("Seeded user: %s", email)
	}
	return nil
}
